package mocks

import (
	"context"

	"github.com/mfortes/eventstay/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockHotelRepo struct {
	mock.Mock
	domain.HotelRepository
}

func (m *MockHotelRepo) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepo) GetById(ctx context.Context, hotelId int) (*domain.Hotel, error) {
	args := m.Called(ctx, hotelId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockRoomRepo struct {
	mock.Mock
	domain.RoomRepository
}

func (m *MockRoomRepo) GetByHotelId(ctx context.Context, hotelId int) ([]domain.Room, error) {
	args := m.Called(ctx, hotelId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepo) GetWithBookings(ctx context.Context, roomId int) (*domain.Room, error) {
	args := m.Called(ctx, roomId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
