// Package storage abstracts where uploaded profile photos live, so the
// account services never touch the filesystem or an object store directly.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PhotoStore is a minimal blob store keyed by filename-like strings.
// Delete of a missing key is a no-op, never an error.
type PhotoStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Extensions accepted for profile photos, with their content types.
var allowedExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// AllowedFile reports whether name carries an accepted image extension.
// The check is case-insensitive.
func AllowedFile(name string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ContentType returns the content type for an accepted filename, or the
// generic octet-stream fallback.
func ContentType(name string) string {
	if ct, ok := allowedExtensions[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// PhotoKey derives a collision-resistant storage key for a user's photo.
// The owner id prefix keeps keys attributable; the random segment avoids
// clashes when the same client filename is uploaded twice.
func PhotoKey(userID int, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("user_%d_%s%s", userID, uuid.NewString()[:8], ext)
}
