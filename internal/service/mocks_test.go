package service

import (
	"context"
	"io"

	"account_manager/internal/models"
)

// Lightweight in-test mocks for the repository and storage dependencies,
// with call recording where assertions need it.

type mockAdminsRepo struct {
	CreateFn        func(ctx context.Context, username, hash string) (int, error)
	GetByUsernameFn func(ctx context.Context, username string) (*models.Admin, error)

	createCalls []struct {
		username string
		hash     string
	}
}

func (m *mockAdminsRepo) Create(ctx context.Context, username, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return m.CreateFn(ctx, username, hash)
}

func (m *mockAdminsRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return m.GetByUsernameFn(ctx, username)
}

type mockUsersRepo struct {
	CreateFn        func(ctx context.Context, username, hash string) (int, error)
	GetByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	GetByIDFn       func(ctx context.Context, id int) (*models.User, error)
	ListFn          func(ctx context.Context) ([]models.User, error)
	UpdateProfileFn func(ctx context.Context, u *models.User) error
	DeleteFn        func(ctx context.Context, id int) error

	createCalls []struct {
		username string
		hash     string
	}
	updatedProfiles []models.User
	deletedIDs      []int
}

func (m *mockUsersRepo) Create(ctx context.Context, username, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return m.CreateFn(ctx, username, hash)
}

func (m *mockUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFn(ctx, username)
}

func (m *mockUsersRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockUsersRepo) List(ctx context.Context) ([]models.User, error) {
	return m.ListFn(ctx)
}

func (m *mockUsersRepo) UpdateProfile(ctx context.Context, u *models.User) error {
	m.updatedProfiles = append(m.updatedProfiles, *u)
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, u)
	}
	return nil
}

func (m *mockUsersRepo) Delete(ctx context.Context, id int) error {
	m.deletedIDs = append(m.deletedIDs, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockPhotoStore struct {
	PutErr    error
	DeleteErr error

	putKeys     []string
	putContents []string
	deletedKeys []string
}

func (m *mockPhotoStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	data, _ := io.ReadAll(r)
	m.putKeys = append(m.putKeys, key)
	m.putContents = append(m.putContents, string(data))
	return nil
}

func (m *mockPhotoStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, io.EOF
}

func (m *mockPhotoStore) Delete(ctx context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.deletedKeys = append(m.deletedKeys, key)
	return nil
}
