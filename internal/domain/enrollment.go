package domain

import (
	"context"
	"time"
)

// Enrollment is a user's attendee profile. A user has at most one and
// cannot buy tickets without it.
type Enrollment struct {
	ID        int
	UserID    int
	Name      string
	Document  string
	Birthday  time.Time
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EnrollmentRepository interface {
	GetByUserId(ctx context.Context, userId int) (*Enrollment, error)
	Upsert(ctx context.Context, enrollment *Enrollment) error
}
