package session

import (
	"crypto/sha256"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	tokenCookieName  = "session_token"
	flashSessionName = "flash"
)

// Manager ties the token store to HTTP: it issues and clears the signed
// session cookie and carries one-shot flash messages across redirects.
type Manager struct {
	codec *securecookie.SecureCookie
	flash *sessions.CookieStore
	store Store
}

// NewManager derives distinct signing and encryption keys from the single
// configured secret, so the config stays one string.
func NewManager(secret string, store Store) *Manager {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	flash := sessions.NewCookieStore(h[:], e[:])
	flash.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		codec: securecookie.New(h[:], e[:]),
		flash: flash,
		store: store,
	}
}

// Issue creates a server-side session for c and sets the token cookie.
func (m *Manager) Issue(w http.ResponseWriter, r *http.Request, c Claim) error {
	token, err := m.store.Create(r.Context(), c)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	encoded, err := m.codec.Encode(tokenCookieName, token)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Claim resolves the request's cookie into a claim, if a live session exists.
func (m *Manager) Claim(r *http.Request) (Claim, bool) {
	ck, err := r.Cookie(tokenCookieName)
	if err != nil {
		return Claim{}, false
	}
	var token string
	if err := m.codec.Decode(tokenCookieName, ck.Value, &token); err != nil {
		return Claim{}, false
	}
	return m.store.Get(r.Context(), token)
}

// Clear revokes the server-side session (if any) and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	if ck, err := r.Cookie(tokenCookieName); err == nil {
		var token string
		if err := m.codec.Decode(tokenCookieName, ck.Value, &token); err == nil {
			m.store.Delete(r.Context(), token)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash queues a one-shot message for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	s, err := m.flash.Get(r, flashSessionName)
	if err != nil {
		// A stale or tampered flash cookie resets to an empty session.
		s, _ = m.flash.New(r, flashSessionName)
	}
	s.AddFlash(msg)
	_ = s.Save(r, w)
}

// TakeFlashes pops all pending flash messages.
func (m *Manager) TakeFlashes(w http.ResponseWriter, r *http.Request) []string {
	s, err := m.flash.Get(r, flashSessionName)
	if err != nil {
		return nil
	}
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save(r, w) // persist removal
	msgs := make([]string, 0, len(raw))
	for _, v := range raw {
		if msg, ok := v.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
