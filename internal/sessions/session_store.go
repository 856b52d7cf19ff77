package sessions

import (
	"context"
	"errors"
	"time"
)

// SessionStore maps opaque session tokens to member ids.
type SessionStore interface {
	Save(ctx context.Context, token string, memberID int64, ttl time.Duration) error

	Lookup(ctx context.Context, token string) (int64, error)

	Delete(ctx context.Context, token string) error
}

var ErrSessionNotFound = errors.New("session not found")
