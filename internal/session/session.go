package session

import (
	"context"
	"time"
)

// Identity is the resolved {user id, admin flag} a valid session carries.
// The admin flag is fixed at session creation and never re-read from the
// user row for the session's lifetime.
type Identity struct {
	UserID  int  `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
}

// Store owns session persistence and expiry semantics. Get returns
// (nil, nil) for an absent or expired token; Destroy is idempotent and
// guarantees no later Get observes the token as valid.
type Store interface {
	Create(ctx context.Context, ident Identity, ttl time.Duration) (string, error)
	Get(ctx context.Context, token string) (*Identity, error)
	Destroy(ctx context.Context, token string) error
}
