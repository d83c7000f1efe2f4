package service

import (
	"context"
	"io"

	"account_manager/internal/models"
	"account_manager/internal/repository"
	"account_manager/internal/storage"
)

// Auth covers registration and credential checks for both account kinds.
type Auth interface {
	RegisterAdmin(ctx context.Context, username, password string) (int, error)
	LoginAdmin(ctx context.Context, username, password string) (*models.Admin, error)
	LoginUser(ctx context.Context, username, password string) (*models.User, error)
}

// Accounts exposes the admin-side user management operations.
type Accounts interface {
	CreateUser(ctx context.Context, username, password string) (int, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// PhotoUpload is an incoming multipart photo part.
type PhotoUpload struct {
	Filename string
	Content  io.Reader
	Size     int64
}

// ProfileUpdate carries the editable fields of a user's own profile.
// A nil YearOfBirth clears the stored year; a nil Photo keeps the current one.
type ProfileUpdate struct {
	Name        string
	Surname     string
	YearOfBirth *int
	Description string
	Photo       *PhotoUpload
}

// Profile exposes a user's access to their own row, and nothing else.
type Profile interface {
	Get(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, p ProfileUpdate) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Auth
	Accounts
	Profile
}

// NewService wires the repository and blob-store layers into concrete services.
func NewService(repos *repository.Repository, photos storage.PhotoStore) *Service {
	return &Service{
		Auth:     NewAuthService(repos.Admins, repos.Users),
		Accounts: NewAccountsService(repos.Users, photos),
		Profile:  NewProfileService(repos.Users, photos),
	}
}
