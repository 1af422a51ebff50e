package domain

import (
	"context"
	"time"
)

type Booking struct {
	ID        int
	UserID    int
	RoomID    int
	Room      Room
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingRepository interface {
	// GetByUserId returns the user's booking (first match) with its room.
	GetByUserId(ctx context.Context, userId int) (*Booking, error)
	GetById(ctx context.Context, bookingId int) (*Booking, error)

	// Create inserts the booking while holding a lock on the target room,
	// re-checking capacity inside the transaction. Returns ErrRoomFull when
	// a concurrent booking claimed the last spot, ErrRecordNotFound when the
	// room does not exist.
	Create(ctx context.Context, booking *Booking) error

	// UpdateRoom moves an existing booking to another room under the same
	// capacity lock as Create.
	UpdateRoom(ctx context.Context, bookingId, roomId int) error
}
