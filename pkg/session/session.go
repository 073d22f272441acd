// Package session implements server-side sessions. The session cookie is
// the sole carrier of identity; each session also owns the anti-forgery
// token checked on mutating requests.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

// ErrNotFound is returned when no session exists for a token.
var ErrNotFound = errors.New("session not found")

// Session is one authenticated server-side context.
type Session struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"user_id"`
	CSRFToken string    `json:"csrf_token"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions. Handlers receive a Store by reference; there
// is no process-wide session state.
type Store interface {
	// Create opens a new session for the user with fresh tokens.
	Create(ctx context.Context, userID uint) (*Session, error)
	// Get returns the session for token, or ErrNotFound.
	Get(ctx context.Context, token string) (*Session, error)
	// Save writes back a mutated session (e.g. a reissued CSRF token).
	Save(ctx context.Context, sess *Session) error
	// Delete removes the session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

// NewToken returns a 64-char hex token from 32 random bytes.
func NewToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("session: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func newSession(userID uint) *Session {
	return &Session{
		Token:     NewToken(),
		UserID:    userID,
		CSRFToken: NewToken(),
		CreatedAt: time.Now().UTC(),
	}
}
