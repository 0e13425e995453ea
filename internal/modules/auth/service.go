package auth

import (
	"context"
	"errors"
	"strings"

	"favoritesapi/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(clientID int64, role string) (string, error)
}

// Service exchanges credentials for bearer tokens.
type Service struct {
	clients ClientReader
	jwt     jwtService
}

func NewService(clients ClientReader, jwt jwtService) *Service {
	return &Service{
		clients: clients,
		jwt:     jwt,
	}
}

// Login verifies the password and issues a signed token carrying the
// client id and role. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.Client, string, error) {
	client, err := s.clients.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(client.ID, string(client.Role))
	if err != nil {
		return nil, "", err
	}

	client.PasswordHash = ""
	return client, token, nil
}

// Me resolves the authenticated client from the id carried by the
// token. A stale token for a deleted client maps to
// ErrInvalidCredentials.
func (s *Service) Me(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	client.PasswordHash = ""
	return client, nil
}
