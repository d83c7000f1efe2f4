package service

import (
	"context"
	"fmt"

	"account_manager/internal/models"
	"account_manager/internal/repository"
	"account_manager/internal/storage"
)

// AccountsService implements the admin-side user management operations.
type AccountsService struct {
	users  repository.Users
	photos storage.PhotoStore
}

var _ Accounts = (*AccountsService)(nil)

func NewAccountsService(users repository.Users, photos storage.PhotoStore) *AccountsService {
	return &AccountsService{users: users, photos: photos}
}

// CreateUser hashes the password and creates a new user row.
func (s *AccountsService) CreateUser(ctx context.Context, username, password string) (int, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	return s.users.Create(ctx, username, hash)
}

func (s *AccountsService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *AccountsService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// DeleteUser removes the row and any photo blob it owns. The blob goes
// first so a crash cannot leave an orphaned file behind a deleted row.
func (s *AccountsService) DeleteUser(ctx context.Context, id int) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Photo != "" {
		if err := s.photos.Delete(ctx, u.Photo); err != nil {
			return fmt.Errorf("delete photo for user id=%d: %w", id, err)
		}
	}
	return s.users.Delete(ctx, id)
}
