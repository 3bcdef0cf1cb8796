package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

const (
	// CookieName is the HTTP-only cookie carrying the opaque session token.
	CookieName = "burger_session"

	// DefaultTTL is how long a session stays valid after login.
	DefaultTTL = 24 * time.Hour
)

var ErrSessionNotFound = errors.New("session not found or expired")

// Data is the server-held record referenced by a client token.
type Data struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Store maps opaque tokens to session data with a fixed time-to-live.
type Store interface {
	Create(ctx context.Context, data Data) (string, error)
	Get(ctx context.Context, token string) (Data, error)
	Destroy(ctx context.Context, token string) error
}

// newToken generates a cryptographically random 32-byte hex token.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
