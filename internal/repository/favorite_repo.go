package repository

import (
	"context"
	"errors"

	"favoritesapi/internal/database"
	"favoritesapi/internal/domain"

	"gorm.io/gorm"
)

// ErrDuplicateFavorite is returned when the (client, product) pair
// already exists, whether caught by the pre-check or by the unique
// index on insert.
var ErrDuplicateFavorite = errors.New("favorite already exists")

// ErrFavoriteNotFound is returned when a removal matches no row.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository persists the client-to-product relation.
type FavoriteRepository interface {
	Create(ctx context.Context, f *domain.Favorite) error
	Exists(ctx context.Context, clientID, productID int64) (bool, error)
	ListByClientID(ctx context.Context, clientID int64) ([]domain.Favorite, error)
	Remove(ctx context.Context, clientID, productID int64) error
	ListAll(ctx context.Context) ([]domain.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create inserts the favorite. The unique index on
// (client_id, product_id) is the real guard against concurrent
// duplicate creates; a violation surfaces as ErrDuplicateFavorite.
func (r *favoriteRepository) Create(ctx context.Context, f *domain.Favorite) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrDuplicateFavorite
		}
		return err
	}
	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, clientID, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("client_id = ? AND product_id = ?", clientID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByClientID returns the client's favorites in insertion order.
func (r *favoriteRepository) ListByClientID(ctx context.Context, clientID int64) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, clientID, productID int64) error {
	result := r.db.WithContext(ctx).
		Where("client_id = ? AND product_id = ?", clientID, productID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// ListAll enumerates every favorite row. Used by the audit utility.
func (r *favoriteRepository) ListAll(ctx context.Context) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}
