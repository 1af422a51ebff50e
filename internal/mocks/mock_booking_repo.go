package mocks

import (
	"context"

	"github.com/mfortes/eventstay/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) GetByUserId(ctx context.Context, userId int) (*domain.Booking, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetById(ctx context.Context, bookingId int) (*domain.Booking, error) {
	args := m.Called(ctx, bookingId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) UpdateRoom(ctx context.Context, bookingId, roomId int) error {
	args := m.Called(ctx, bookingId, roomId)
	return args.Error(0)
}
