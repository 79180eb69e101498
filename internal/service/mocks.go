package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Save(ctx context.Context, sessionID string, entries []domain.OverlapEntry, expiresAt time.Time) error {
	args := m.Called(ctx, sessionID, entries, expiresAt)
	return args.Error(0)
}

func (m *MockResultRepository) GetBySessionID(ctx context.Context, sessionID string, now time.Time) ([]domain.OverlapEntry, error) {
	args := m.Called(ctx, sessionID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OverlapEntry), args.Error(1)
}

func (m *MockResultRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
