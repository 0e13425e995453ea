package auth

import (
	"context"
	"testing"
	"time"

	"favoritesapi/internal/domain"
	jwtsvc "favoritesapi/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockClientReader struct {
	mock.Mock
}

func (m *MockClientReader) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientReader) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Login_Success(t *testing.T) {
	clients := new(MockClientReader)
	clients.On("GetByEmail", mock.Anything, "user@teste.com").Return(&domain.Client{
		ID:           3,
		Name:         "Usuário Teste",
		Email:        "user@teste.com",
		PasswordHash: hashed(t, "password"),
		Role:         domain.RoleUser,
	}, nil)

	j := jwtsvc.New("test-secret", time.Hour)
	svc := NewService(clients, j)

	client, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "User@Teste.com", // case-insensitive lookup
		Password: "password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, client.PasswordHash, "hash never leaves the service")

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.ClientID)
	assert.Equal(t, "user", claims.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	clients := new(MockClientReader)
	clients.On("GetByEmail", mock.Anything, "user@teste.com").Return(&domain.Client{
		ID:           3,
		Email:        "user@teste.com",
		PasswordHash: hashed(t, "password"),
	}, nil)

	svc := NewService(clients, jwtsvc.New("test-secret", time.Hour))
	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "user@teste.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	clients := new(MockClientReader)
	clients.On("GetByEmail", mock.Anything, "ghost@teste.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(clients, jwtsvc.New("test-secret", time.Hour))
	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@teste.com",
		Password: "password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Me_Success(t *testing.T) {
	clients := new(MockClientReader)
	clients.On("GetByID", mock.Anything, int64(3)).Return(&domain.Client{
		ID:           3,
		Name:         "Usuário Teste",
		Email:        "user@teste.com",
		PasswordHash: hashed(t, "password"),
		Role:         domain.RoleUser,
	}, nil)

	svc := NewService(clients, jwtsvc.New("test-secret", time.Hour))
	client, err := svc.Me(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "user@teste.com", client.Email)
	assert.Empty(t, client.PasswordHash, "hash never leaves the service")
}

func TestService_Me_DeletedClient(t *testing.T) {
	clients := new(MockClientReader)
	clients.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(clients, jwtsvc.New("test-secret", time.Hour))
	_, err := svc.Me(context.Background(), 42)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
