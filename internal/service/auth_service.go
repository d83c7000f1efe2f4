package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"account_manager/internal/models"
	"account_manager/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords,
// so a login response never reveals which half failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles registration and login for admins and users.
type AuthService struct {
	admins repository.Admins
	users  repository.Users
}

var _ Auth = (*AuthService)(nil)

func NewAuthService(admins repository.Admins, users repository.Users) *AuthService {
	return &AuthService{admins: admins, users: users}
}

// RegisterAdmin hashes the password and creates a new admin row.
// Duplicate usernames surface as repository.ErrDuplicateUsername.
func (s *AuthService) RegisterAdmin(ctx context.Context, username, password string) (int, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	return s.admins.Create(ctx, username, hash)
}

// LoginAdmin verifies admin credentials and returns the matching row.
func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	a, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(a.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// LoginUser verifies user credentials and returns the matching row.
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash (bcrypt compares in constant time)
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
