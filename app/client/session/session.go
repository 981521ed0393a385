// Package session is the client's single source of truth for "is a user
// currently authenticated, and as whom". It is a small two-state machine:
// all mutation goes through Login and Logout, and both keep the in-memory
// state consistent with durable storage (storage first, state second).
package session

import (
	"fmt"
	"sync"

	"kokoro-diary/app/client/storage"

	"github.com/golang-jwt/jwt/v5"
)

// ReasonExpired is the logout context used when the server rejects the
// stored credential on a regular request.
const ReasonExpired = "session expired"

// LogoutContext carries why a logout happened and where the user was headed,
// so the login view can explain itself and return the user afterwards.
type LogoutContext struct {
	Reason   string
	ReturnTo string
}

type Session struct {
	store *storage.Store

	mu            sync.Mutex
	authenticated bool
	userName      string
}

// New derives the initial state from whether a token currently exists in
// durable storage. This is a point-in-time presence check only: an expired
// token still counts as authenticated until the server rejects it.
func New(store *storage.Store) (*Session, error) {
	s := &Session{store: store}

	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load stored token: %w", err)
	}
	if token != "" {
		s.authenticated = true
		s.userName = UserNameFromToken(token)
	}

	return s, nil
}

// Login persists the token and flips the state to authenticated. If the
// token cannot be persisted the login fails and the state stays anonymous,
// so state and storage never diverge.
func (s *Session) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	s.authenticated = true
	s.userName = UserNameFromToken(token)

	return nil
}

// Logout clears the durable token and resets the state. After Logout returns,
// any request that reads the store sees no credential.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	s.authenticated = false
	s.userName = ""

	return nil
}

// Current returns a consistent snapshot of the session state.
func (s *Session) Current() (authenticated bool, userName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.authenticated, s.userName
}

// UserNameFromToken peeks at the userName claim without verifying the
// signature. The client never trusts this for authorization; it is display
// data, and the server re-verifies the token on every call.
func UserNameFromToken(tokenString string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return ""
	}

	name, _ := claims["userName"].(string)
	return name
}
