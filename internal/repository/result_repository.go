package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

// ResultRepository хранит результат расчета между запросами одной сессии
type ResultRepository interface {
	Save(ctx context.Context, sessionID string, entries []domain.OverlapEntry, expiresAt time.Time) error
	GetBySessionID(ctx context.Context, sessionID string, now time.Time) ([]domain.OverlapEntry, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
