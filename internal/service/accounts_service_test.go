package service

import (
	"context"
	"errors"
	"testing"

	"account_manager/internal/models"
	"account_manager/internal/repository"
)

func TestAccountsService_CreateUser_HashesPassword(t *testing.T) {
	users := &mockUsersRepo{
		CreateFn: func(ctx context.Context, username, hash string) (int, error) {
			return 3, nil
		},
	}
	svc := NewAccountsService(users, &mockPhotoStore{})

	id, err := svc.CreateUser(context.Background(), "bob", "pw2")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}
	if len(users.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(users.createCalls))
	}
	if users.createCalls[0].hash == "pw2" {
		t.Fatal("password must not be stored as plaintext")
	}
	if err := verifyPassword(users.createCalls[0].hash, "pw2"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestAccountsService_CreateUser_DuplicatePassesThrough(t *testing.T) {
	users := &mockUsersRepo{
		CreateFn: func(ctx context.Context, username, hash string) (int, error) {
			return 0, repository.ErrDuplicateUsername
		},
	}
	svc := NewAccountsService(users, &mockPhotoStore{})

	_, err := svc.CreateUser(context.Background(), "bob", "pw2")
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAccountsService_DeleteUser_WithPhotoRemovesBlobFirst(t *testing.T) {
	photos := &mockPhotoStore{}
	users := &mockUsersRepo{
		GetByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			return &models.User{ID: id, Username: "bob", Photo: "user_5_ab12cd34.png"}, nil
		},
	}
	svc := NewAccountsService(users, photos)

	if err := svc.DeleteUser(context.Background(), 5); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if len(photos.deletedKeys) != 1 || photos.deletedKeys[0] != "user_5_ab12cd34.png" {
		t.Fatalf("expected photo blob deleted, got %v", photos.deletedKeys)
	}
	if len(users.deletedIDs) != 1 || users.deletedIDs[0] != 5 {
		t.Fatalf("expected row deleted, got %v", users.deletedIDs)
	}
}

func TestAccountsService_DeleteUser_WithoutPhotoSkipsBlobStore(t *testing.T) {
	photos := &mockPhotoStore{}
	users := &mockUsersRepo{
		GetByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			return &models.User{ID: id, Username: "bob"}, nil
		},
	}
	svc := NewAccountsService(users, photos)

	if err := svc.DeleteUser(context.Background(), 5); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if len(photos.deletedKeys) != 0 {
		t.Fatalf("no blob delete expected, got %v", photos.deletedKeys)
	}
	if len(users.deletedIDs) != 1 {
		t.Fatalf("expected row deleted once, got %v", users.deletedIDs)
	}
}

func TestAccountsService_DeleteUser_MissingPassesNotFound(t *testing.T) {
	users := &mockUsersRepo{
		GetByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewAccountsService(users, &mockPhotoStore{})

	if err := svc.DeleteUser(context.Background(), 99); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(users.deletedIDs) != 0 {
		t.Fatal("Delete must not run for a missing user")
	}
}
