package sessions

import (
	"context"
	"time"
)

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "session not found" }

// Store defines the session lifecycle operations. A missing, destroyed or
// expired token is reported uniformly as ErrNotFound.
type Store interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (Session, error)
	Get(ctx context.Context, token string) (Session, error)
	Destroy(ctx context.Context, token string) error
	DestroyExpired(ctx context.Context) (int64, error)
}
