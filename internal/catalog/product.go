package catalog

// Rating is the optional review aggregate the catalog attaches to a
// product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int64   `json:"count"`
}

// Product is the normalized view of a catalog product. Only the fields
// required for a favorite to be considered valid plus the optional
// rating survive decoding; everything else the upstream sends is
// dropped.
type Product struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Image  string  `json:"image"`
	Price  float64 `json:"price"`
	Rating *Rating `json:"rating,omitempty"`
}
