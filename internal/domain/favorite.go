package domain

import "time"

// Favorite links a client to a product in the external catalog.
// The product is referenced by id only; its details are fetched live,
// never stored. The (client_id, product_id) pair is unique at the
// storage layer so two concurrent creates cannot both slip past the
// duplicate pre-check.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ClientID  int64     `json:"client_id" gorm:"not null;index;uniqueIndex:idx_client_product"`
	ProductID int64     `json:"product_id" gorm:"not null;uniqueIndex:idx_client_product"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Favorite) TableName() string { return "favorites" }
