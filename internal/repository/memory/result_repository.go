package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

type storedResult struct {
	entries   []domain.OverlapEntry
	expiresAt time.Time
}

type resultRepository struct {
	mu      sync.RWMutex
	results map[string]storedResult
}

func NewResultRepository() *resultRepository {
	return &resultRepository{results: make(map[string]storedResult)}
}

func (r *resultRepository) Save(ctx context.Context, sessionID string, entries []domain.OverlapEntry, expiresAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.results[sessionID] = storedResult{
		entries:   append([]domain.OverlapEntry(nil), entries...),
		expiresAt: expiresAt,
	}
	return nil
}

func (r *resultRepository) GetBySessionID(ctx context.Context, sessionID string, now time.Time) ([]domain.OverlapEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.results[sessionID]
	if !ok || !now.Before(result.expiresAt) {
		return nil, domain.NewNotFoundError("result for session " + sessionID)
	}

	entries := make([]domain.OverlapEntry, len(result.entries))
	copy(entries, result.entries)
	return entries, nil
}

func (r *resultRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for sessionID, result := range r.results {
		if !now.Before(result.expiresAt) {
			delete(r.results, sessionID)
			deleted++
		}
	}
	return deleted, nil
}
