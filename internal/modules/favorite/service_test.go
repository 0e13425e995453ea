package favorite

import (
	"context"
	"testing"

	"favoritesapi/internal/catalog"
	"favoritesapi/internal/domain"
	"favoritesapi/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockClientGetter struct {
	mock.Mock
}

func (m *MockClientGetter) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, f *domain.Favorite) error {
	args := m.Called(ctx, f)
	if f != nil {
		f.ID = 55 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, clientID, productID int64) (bool, error) {
	args := m.Called(ctx, clientID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListByClientID(ctx context.Context, clientID int64) ([]domain.Favorite, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, clientID, productID int64) error {
	args := m.Called(ctx, clientID, productID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListAll(ctx context.Context) ([]domain.Favorite, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

type MockProductFetcher struct {
	mock.Mock
}

func (m *MockProductFetcher) FetchProduct(ctx context.Context, productID int64) (*catalog.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductFetcher) FetchAll(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func existingClient(id int64) *domain.Client {
	return &domain.Client{ID: id, Name: "Cliente", Email: "c@teste.com", Role: domain.RoleUser}
}

func backpack() *catalog.Product {
	return &catalog.Product{
		ID:     1,
		Title:  "Backpack",
		Image:  "https://img/1.jpg",
		Price:  109.95,
		Rating: &catalog.Rating{Rate: 3.9, Count: 120},
	}
}

func TestService_Create_Success(t *testing.T) {
	clients := new(MockClientGetter)
	favorites := new(MockFavoriteRepository)
	products := new(MockProductFetcher)

	clients.On("GetByID", mock.Anything, int64(10)).Return(existingClient(10), nil)
	favorites.On("Exists", mock.Anything, int64(10), int64(1)).Return(false, nil)
	products.On("FetchProduct", mock.Anything, int64(1)).Return(backpack(), nil)
	favorites.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(clients, favorites, products)
	product, err := svc.Create(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.Equal(t, "Backpack", product.Title, "caller gets the live catalog snapshot")
	favorites.AssertExpectations(t)
}

func TestService_Create_ClientNotFound(t *testing.T) {
	clients := new(MockClientGetter)
	clients.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(clients, new(MockFavoriteRepository), new(MockProductFetcher))
	_, err := svc.Create(context.Background(), 99, 1)

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_Create_Duplicate(t *testing.T) {
	clients := new(MockClientGetter)
	favorites := new(MockFavoriteRepository)
	products := new(MockProductFetcher)

	clients.On("GetByID", mock.Anything, int64(10)).Return(existingClient(10), nil)
	favorites.On("Exists", mock.Anything, int64(10), int64(1)).Return(true, nil)

	svc := NewService(clients, favorites, products)
	_, err := svc.Create(context.Background(), 10, 1)

	assert.ErrorIs(t, err, ErrAlreadyFavorited)
	products.AssertNotCalled(t, "FetchProduct")
	favorites.AssertNotCalled(t, "Create")
}

func TestService_Create_DuplicateOnInsert(t *testing.T) {
	// A concurrent create slipped in between the pre-check and the
	// insert; the unique index reports it.
	clients := new(MockClientGetter)
	favorites := new(MockFavoriteRepository)
	products := new(MockProductFetcher)

	clients.On("GetByID", mock.Anything, int64(10)).Return(existingClient(10), nil)
	favorites.On("Exists", mock.Anything, int64(10), int64(1)).Return(false, nil)
	products.On("FetchProduct", mock.Anything, int64(1)).Return(backpack(), nil)
	favorites.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateFavorite)

	svc := NewService(clients, favorites, products)
	_, err := svc.Create(context.Background(), 10, 1)

	assert.ErrorIs(t, err, ErrAlreadyFavorited)
}

func TestService_Create_ProductNotFound(t *testing.T) {
	clients := new(MockClientGetter)
	favorites := new(MockFavoriteRepository)
	products := new(MockProductFetcher)

	clients.On("GetByID", mock.Anything, int64(10)).Return(existingClient(10), nil)
	favorites.On("Exists", mock.Anything, int64(10), int64(7)).Return(false, nil)
	products.On("FetchProduct", mock.Anything, int64(7)).Return(nil, catalog.ErrProductNotFound)

	svc := NewService(clients, favorites, products)
	_, err := svc.Create(context.Background(), 10, 7)

	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	favorites.AssertNotCalled(t, "Create")
}

func TestService_List_DropsUnresolvableProducts(t *testing.T) {
	clients := new(MockClientGetter)
	favorites := new(MockFavoriteRepository)
	products := new(MockProductFetcher)

	clients.On("GetByID", mock.Anything, int64(10)).Return(existingClient(10), nil)
	favorites.On("ListByClientID", mock.Anything, int64(10)).Return([]domain.Favorite{
		{ID: 1, ClientID: 10, ProductID: 1},
		{ID: 2, ClientID: 10, ProductID: 2},
		{ID: 3, ClientID: 10, ProductID: 3},
	}, nil)

	products.On("FetchProduct", mock.Anything, int64(1)).Return(backpack(), nil)
	// product 2 was removed from the catalog after being favorited
	products.On("FetchProduct", mock.Anything, int64(2)).Return(nil, catalog.ErrProductNotFound)
	products.On("FetchProduct", mock.Anything, int64(3)).Return(&catalog.Product{
		ID: 3, Title: "Shirt", Image: "i", Price: 15,
	}, nil)

	svc := NewService(clients, favorites, products)
	items, err := svc.List(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
	assert.Nil(t, items[1].Review, "rating absent upstream stays absent")
}

func TestService_List_ClientNotFound(t *testing.T) {
	clients := new(MockClientGetter)
	clients.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(clients, new(MockFavoriteRepository), new(MockProductFetcher))
	_, err := svc.List(context.Background(), 99)

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_Destroy_NotFound(t *testing.T) {
	clients := new(MockClientGetter)
	favorites := new(MockFavoriteRepository)

	clients.On("GetByID", mock.Anything, int64(10)).Return(existingClient(10), nil)
	favorites.On("Remove", mock.Anything, int64(10), int64(4)).Return(repository.ErrFavoriteNotFound)

	svc := NewService(clients, favorites, new(MockProductFetcher))
	err := svc.Destroy(context.Background(), 10, 4)

	assert.ErrorIs(t, err, repository.ErrFavoriteNotFound)
}

func TestService_Audit_ReportsInvalidRows(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	products := new(MockProductFetcher)

	favorites.On("ListAll", mock.Anything).Return([]domain.Favorite{
		{ID: 1, ClientID: 10, ProductID: 1},
		{ID: 2, ClientID: 11, ProductID: 2},
	}, nil)
	products.On("FetchProduct", mock.Anything, int64(1)).Return(backpack(), nil)
	products.On("FetchProduct", mock.Anything, int64(2)).Return(nil, catalog.ErrProductNotFound)

	svc := NewService(new(MockClientGetter), favorites, products)
	report, err := svc.Audit(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	require.Len(t, report.Invalid, 1)
	assert.Equal(t, int64(2), report.Invalid[0].ID)
	assert.Equal(t, int64(11), report.Invalid[0].ClientID)
	favorites.AssertNotCalled(t, "Remove")
}

func TestService_Audit_DeletesInvalidRows(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	products := new(MockProductFetcher)

	favorites.On("ListAll", mock.Anything).Return([]domain.Favorite{
		{ID: 2, ClientID: 11, ProductID: 2},
	}, nil)
	products.On("FetchProduct", mock.Anything, int64(2)).Return(nil, catalog.ErrProductNotFound)
	favorites.On("Remove", mock.Anything, int64(11), int64(2)).Return(nil)

	svc := NewService(new(MockClientGetter), favorites, products)
	report, err := svc.Audit(context.Background(), true)

	require.NoError(t, err)
	assert.True(t, report.Deleted)
	favorites.AssertExpectations(t)
}
