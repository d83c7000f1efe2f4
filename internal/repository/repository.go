package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"account_manager/internal/models"
)

// Errors shared by both account repositories.
var (
	// ErrNotFound is returned when a row addressed by id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when an insert collides with the
	// UNIQUE username column.
	ErrDuplicateUsername = errors.New("username already exists")
)

type Admins interface {
	Create(ctx context.Context, username, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

type Users interface {
	Create(ctx context.Context, username, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Admins Admins
	Users  Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Admins: NewAdminRepository(db),
		Users:  NewUserRepository(db),
	}
}

// isUniqueViolation reports whether err is SQLite's UNIQUE constraint
// failure. The driver error message is stable ("UNIQUE constraint failed:
// <table>.<column>"), and matching on it keeps the check testable with a
// plain *sql.DB mock.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
