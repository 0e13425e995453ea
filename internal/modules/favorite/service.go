package favorite

import (
	"context"
	"errors"
	"log"

	"favoritesapi/internal/catalog"
	"favoritesapi/internal/domain"
	"favoritesapi/internal/repository"

	"gorm.io/gorm"
)

// ClientGetter — only the lookup the favorite service needs.
type ClientGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// ProductFetcher is implemented by the catalog client.
type ProductFetcher interface {
	FetchProduct(ctx context.Context, productID int64) (*catalog.Product, error)
	FetchAll(ctx context.Context) ([]byte, error)
}

// Service implements the favorite workflow: existence checks against
// the owning client, duplicate detection, validation and enrichment
// against the external catalog.
type Service struct {
	clients   ClientGetter
	favorites repository.FavoriteRepository
	products  ProductFetcher
}

func NewService(clients ClientGetter, favorites repository.FavoriteRepository, products ProductFetcher) *Service {
	return &Service{
		clients:   clients,
		favorites: favorites,
		products:  products,
	}
}

// List returns the client's favorites enriched with live catalog data,
// in insertion order. Favorites whose product no longer resolves are
// dropped from the result, not reported.
func (s *Service) List(ctx context.Context, clientID int64) ([]FavoriteProductResponse, error) {
	if err := s.ensureClientExists(ctx, clientID); err != nil {
		return nil, err
	}

	rows, err := s.favorites.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := make([]FavoriteProductResponse, 0, len(rows))
	for _, row := range rows {
		product, err := s.products.FetchProduct(ctx, row.ProductID)
		if err != nil {
			continue
		}
		items = append(items, ToFavoriteProductResponse(product))
	}
	return items, nil
}

// Create validates the product against the external catalog before
// persisting the favorite. The returned payload is the live catalog
// snapshot, not the stored row.
func (s *Service) Create(ctx context.Context, clientID, productID int64) (*catalog.Product, error) {
	if err := s.ensureClientExists(ctx, clientID); err != nil {
		return nil, err
	}

	exists, err := s.favorites.Exists(ctx, clientID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorited
	}

	product, err := s.products.FetchProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	fav := &domain.Favorite{ClientID: clientID, ProductID: productID}
	if err := s.favorites.Create(ctx, fav); err != nil {
		// A concurrent create may land between the pre-check and the
		// insert; the unique index turns that into a duplicate.
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}

	return product, nil
}

// Destroy removes the favorite identified by (clientID, productID).
func (s *Service) Destroy(ctx context.Context, clientID, productID int64) error {
	if err := s.ensureClientExists(ctx, clientID); err != nil {
		return err
	}
	return s.favorites.Remove(ctx, clientID, productID)
}

// Products passes the catalog listing through verbatim.
func (s *Service) Products(ctx context.Context) ([]byte, error) {
	return s.products.FetchAll(ctx)
}

// InvalidFavorite identifies a favorite whose product no longer
// resolves in the catalog.
type InvalidFavorite struct {
	ID        int64 `json:"id"`
	ClientID  int64 `json:"client_id"`
	ProductID int64 `json:"product_id"`
}

// AuditReport summarizes one audit run.
type AuditReport struct {
	Total   int               `json:"total"`
	Invalid []InvalidFavorite `json:"invalid"`
	Deleted bool              `json:"deleted"`
}

// Audit re-validates every favorite against the catalog using the same
// existence check as Create and optionally deletes the rows that no
// longer resolve.
func (s *Service) Audit(ctx context.Context, deleteInvalid bool) (*AuditReport, error) {
	rows, err := s.favorites.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &AuditReport{
		Total:   len(rows),
		Invalid: []InvalidFavorite{},
		Deleted: deleteInvalid,
	}

	for _, row := range rows {
		if _, err := s.products.FetchProduct(ctx, row.ProductID); err == nil {
			continue
		}

		report.Invalid = append(report.Invalid, InvalidFavorite{
			ID:        row.ID,
			ClientID:  row.ClientID,
			ProductID: row.ProductID,
		})

		if deleteInvalid {
			if err := s.favorites.Remove(ctx, row.ClientID, row.ProductID); err != nil {
				log.Printf("audit: failed to remove favorite id=%d: %v", row.ID, err)
			}
		}
	}

	return report, nil
}

func (s *Service) ensureClientExists(ctx context.Context, clientID int64) error {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}
