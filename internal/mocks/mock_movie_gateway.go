package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

type MockMovieGateway struct {
	mock.Mock
}

func (m *MockMovieGateway) List(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movie), args.Error(1)
}

func (m *MockMovieGateway) Get(ctx context.Context, id int) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockMovieGateway) Create(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	args := m.Called(ctx, movie)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockMovieGateway) Update(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	args := m.Called(ctx, movie)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockMovieGateway) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
