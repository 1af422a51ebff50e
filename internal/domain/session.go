package domain

import (
	"context"
	"time"
)

// Session is a server-side record of an issued bearer token. A token that
// verifies cryptographically but has no session row is rejected, which lets
// sign-out and forced revocation work without waiting for expiry.
type Session struct {
	ID        int
	UserID    int
	Token     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
}
