package domain

import (
	"context"
	"time"
)

type Hotel struct {
	ID        int
	Name      string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Room struct {
	ID        int
	Name      string
	Capacity  int
	HotelID   int
	Bookings  []Booking
	CreatedAt time.Time
	UpdatedAt time.Time
}

type HotelRepository interface {
	GetAll(ctx context.Context) ([]Hotel, error)
	GetById(ctx context.Context, hotelId int) (*Hotel, error)
}

type RoomRepository interface {
	// GetByHotelId returns the hotel's rooms, each with its current bookings.
	GetByHotelId(ctx context.Context, hotelId int) ([]Room, error)
	GetWithBookings(ctx context.Context, roomId int) (*Room, error)
}
