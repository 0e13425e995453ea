package auth

import (
	"context"

	"favoritesapi/internal/domain"
)

// ClientReader — only the lookups the auth service needs.
type ClientReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}
