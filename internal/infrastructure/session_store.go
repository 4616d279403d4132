package infrastructure

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore maps an opaque session id to the authenticated user name.
type SessionStore interface {
	Create(ctx context.Context, userName string) (string, error)
	// Get returns an empty user name when the session is unknown or expired.
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
	TTL() time.Duration
}

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = 24 * time.Hour
)

func newSessionID() string {
	return uuid.NewString()
}
