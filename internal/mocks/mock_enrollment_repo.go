package mocks

import (
	"context"

	"github.com/mfortes/eventstay/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockEnrollmentRepo struct {
	mock.Mock
	domain.EnrollmentRepository
}

func (m *MockEnrollmentRepo) GetByUserId(ctx context.Context, userId int) (*domain.Enrollment, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepo) Upsert(ctx context.Context, enrollment *domain.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}
