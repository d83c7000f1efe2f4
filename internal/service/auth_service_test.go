package service

import (
	"context"
	"errors"
	"testing"

	"account_manager/internal/models"
	"account_manager/internal/repository"
)

// --- RegisterAdmin tests ---

func TestAuthService_RegisterAdmin_SuccessHashesPasswordAndCallsRepo(t *testing.T) {
	mock := &mockAdminsRepo{
		CreateFn: func(ctx context.Context, username, hash string) (int, error) {
			return 42, nil
		},
	}
	svc := NewAuthService(mock, &mockUsersRepo{})

	id, err := svc.RegisterAdmin(context.Background(), "alice", "s3cr3t")
	if err != nil {
		t.Fatalf("RegisterAdmin returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	// Ensure Create called exactly once with hashed password (not equal to raw) and valid bcrypt.
	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.username != "alice" {
		t.Errorf("expected username 'alice', got %q", call.username)
	}
	if call.hash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(call.hash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_RegisterAdmin_EmptyPassword(t *testing.T) {
	mock := &mockAdminsRepo{
		CreateFn: func(ctx context.Context, username, hash string) (int, error) {
			t.Fatal("Create should not be called for empty password")
			return 0, nil
		},
	}
	svc := NewAuthService(mock, &mockUsersRepo{})

	_, err := svc.RegisterAdmin(context.Background(), "bob", "   ")
	if err == nil {
		t.Fatalf("expected error for empty password, got nil")
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_RegisterAdmin_DuplicatePassesThrough(t *testing.T) {
	mock := &mockAdminsRepo{
		CreateFn: func(ctx context.Context, username, hash string) (int, error) {
			return 0, repository.ErrDuplicateUsername
		},
	}
	svc := NewAuthService(mock, &mockUsersRepo{})

	_, err := svc.RegisterAdmin(context.Background(), "alice", "pw1")
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

// --- Login tests ---

func TestAuthService_LoginAdmin(t *testing.T) {
	hash, _ := hashPassword("pw1")
	stored := &models.Admin{ID: 7, Username: "alice", PasswordHash: hash}

	cases := []struct {
		name     string
		username string
		password string
		repoFn   func(ctx context.Context, username string) (*models.Admin, error)
		wantErr  error
		wantID   int
	}{
		{
			name:     "success",
			username: "alice",
			password: "pw1",
			repoFn: func(ctx context.Context, username string) (*models.Admin, error) {
				return stored, nil
			},
			wantID: 7,
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "pw1",
			repoFn: func(ctx context.Context, username string) (*models.Admin, error) {
				return nil, nil
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			repoFn: func(ctx context.Context, username string) (*models.Admin, error) {
				return stored, nil
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tc := range cases {
		tc := tc // capture
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAuthService(&mockAdminsRepo{GetByUsernameFn: tc.repoFn}, &mockUsersRepo{})

			a, err := svc.LoginAdmin(context.Background(), tc.username, tc.password)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.ID != tc.wantID {
				t.Fatalf("expected id %d, got %d", tc.wantID, a.ID)
			}
		})
	}
}

func TestAuthService_LoginUser(t *testing.T) {
	hash, _ := hashPassword("pw2")
	stored := &models.User{ID: 3, Username: "bob", PasswordHash: hash}

	users := &mockUsersRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			if username == "bob" {
				return stored, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(&mockAdminsRepo{}, users)

	u, err := svc.LoginUser(context.Background(), "bob", "pw2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 3 {
		t.Fatalf("expected id 3, got %d", u.ID)
	}

	if _, err := svc.LoginUser(context.Background(), "bob", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.LoginUser(context.Background(), "nobody", "pw2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestAuthService_LoginAdmin_RepoError(t *testing.T) {
	svc := NewAuthService(&mockAdminsRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.Admin, error) {
			return nil, errors.New("db down")
		},
	}, &mockUsersRepo{})

	_, err := svc.LoginAdmin(context.Background(), "alice", "pw1")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
