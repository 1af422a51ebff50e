package mocks

import (
	"context"

	"github.com/mfortes/eventstay/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTicketRepo struct {
	mock.Mock
	domain.TicketRepository
}

func (m *MockTicketRepo) GetTicketTypes(ctx context.Context) ([]domain.TicketType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TicketType), args.Error(1)
}

func (m *MockTicketRepo) GetTicketTypeById(ctx context.Context, ticketTypeId int) (*domain.TicketType, error) {
	args := m.Called(ctx, ticketTypeId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketType), args.Error(1)
}

func (m *MockTicketRepo) GetByEnrollmentId(ctx context.Context, enrollmentId int) (*domain.Ticket, error) {
	args := m.Called(ctx, enrollmentId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepo) GetById(ctx context.Context, ticketId int) (*domain.Ticket, error) {
	args := m.Called(ctx, ticketId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}
