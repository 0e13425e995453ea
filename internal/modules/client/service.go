package client

import (
	"context"
	"errors"

	"favoritesapi/internal/database"
	"favoritesapi/internal/domain"
	"favoritesapi/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains the business logic for client accounts.
type Service struct {
	clients repository.ClientRepository
}

func NewService(clients repository.ClientRepository) *Service {
	return &Service{clients: clients}
}

func (s *Service) Create(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	taken, err := s.clients.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.Role(req.Role)
		if role != domain.RoleManager && role != domain.RoleUser {
			return nil, ErrInvalidRole
		}
	}

	client := &domain.Client{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		client.PasswordHash = string(hash)
	}

	if err := s.clients.Create(ctx, client); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return client, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

// Update replaces name and email. The uniqueness check excludes the
// record itself, so keeping the current email is always allowed.
func (s *Service) Update(ctx context.Context, id int64, req UpdateClientRequest) (*domain.Client, error) {
	client, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.clients.EmailTaken(ctx, req.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	client.Name = req.Name
	client.Email = req.Email

	if err := s.clients.Update(ctx, client); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return client, nil
}

// Delete removes the client; its favorites go with it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}
