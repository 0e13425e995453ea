package favorite

import "favoritesapi/internal/catalog"

type AddFavoriteRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// FavoriteProductResponse is the flattened item shape of the favorite
// listing. It is deliberately independent of the upstream schema: the
// catalog's rating object is exposed under the review key.
type FavoriteProductResponse struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Image  string          `json:"image"`
	Price  float64         `json:"price"`
	Review *catalog.Rating `json:"review,omitempty"`
}

func ToFavoriteProductResponse(p *catalog.Product) FavoriteProductResponse {
	return FavoriteProductResponse{
		ID:     p.ID,
		Title:  p.Title,
		Image:  p.Image,
		Price:  p.Price,
		Review: p.Rating,
	}
}
