package service

import (
	"context"
	"fmt"

	"account_manager/internal/models"
	"account_manager/internal/repository"
	"account_manager/internal/storage"
)

// ProfileService implements a user's self-service profile operations.
// Callers pass the id held by the session claim, never a client-supplied one.
type ProfileService struct {
	users  repository.Users
	photos storage.PhotoStore
}

var _ Profile = (*ProfileService)(nil)

func NewProfileService(users repository.Users, photos storage.PhotoStore) *ProfileService {
	return &ProfileService{users: users, photos: photos}
}

func (s *ProfileService) Get(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update persists the editable profile fields. A photo part with a
// disallowed extension is skipped silently and the stored photo kept, per
// the upload contract; an accepted photo replaces the old blob before the
// row field is overwritten.
func (s *ProfileService) Update(ctx context.Context, id int, p ProfileUpdate) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	u.Name = p.Name
	u.Surname = p.Surname
	u.YearOfBirth = p.YearOfBirth
	u.Description = p.Description

	if p.Photo != nil && p.Photo.Filename != "" && storage.AllowedFile(p.Photo.Filename) {
		key := storage.PhotoKey(id, p.Photo.Filename)
		if u.Photo != "" {
			if err := s.photos.Delete(ctx, u.Photo); err != nil {
				return fmt.Errorf("delete old photo for user id=%d: %w", id, err)
			}
		}
		if err := s.photos.Put(ctx, key, p.Photo.Content, p.Photo.Size, storage.ContentType(p.Photo.Filename)); err != nil {
			return fmt.Errorf("store photo for user id=%d: %w", id, err)
		}
		u.Photo = key
	}

	return s.users.UpdateProfile(ctx, u)
}
