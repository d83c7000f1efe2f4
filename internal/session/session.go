// Package session resolves opaque client-held tokens into request-scoped
// auth claims. The claim itself never leaves the server; the cookie only
// carries the token.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Roles carried by a claim.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Claim is the immutable identity attached to an authenticated request.
type Claim struct {
	Role     string
	ID       int
	Username string
}

// Store maps opaque tokens to claims. Implementations decide expiry policy.
type Store interface {
	Create(ctx context.Context, c Claim) (string, error)
	Get(ctx context.Context, token string) (Claim, bool)
	Delete(ctx context.Context, token string)
}

// DefaultTTL bounds a session's lifetime when the config does not say.
const DefaultTTL = 24 * time.Hour

type entry struct {
	claim     Claim
	expiresAt time.Time
}

// MemoryStore is an in-process token store with absolute TTL expiry.
// Expired entries are dropped lazily on lookup.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time // swappable in tests
	sessions map[string]entry
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]entry),
	}
}

func (s *MemoryStore) Create(ctx context.Context, c Claim) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = entry{claim: c, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (Claim, bool) {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Claim{}, false
	}
	if s.now().After(e.expiresAt) {
		s.Delete(ctx, token)
		return Claim{}, false
	}
	return e.claim, true
}

func (s *MemoryStore) Delete(ctx context.Context, token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
