package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

type MockShowtimeGateway struct {
	mock.Mock
}

func (m *MockShowtimeGateway) List(ctx context.Context) ([]domain.Showtime, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Showtime), args.Error(1)
}

func (m *MockShowtimeGateway) ListByRoom(ctx context.Context, roomID int) ([]domain.Showtime, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Showtime), args.Error(1)
}

func (m *MockShowtimeGateway) Get(ctx context.Context, id int) (*domain.Showtime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Showtime), args.Error(1)
}

func (m *MockShowtimeGateway) Update(ctx context.Context, showtime domain.Showtime) (*domain.Showtime, error) {
	args := m.Called(ctx, showtime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Showtime), args.Error(1)
}
