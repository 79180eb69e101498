package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RunSweeper периодически удаляет просроченные результаты до отмены ctx
func RunSweeper(ctx context.Context, repo ResultRepository, interval time.Duration, logger zerolog.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			deleted, err := repo.DeleteExpired(ctx, now)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.Error().Err(err).Msg("failed to delete expired results")
				continue
			}
			if deleted > 0 {
				logger.Debug().Int64("deleted", deleted).Msg("expired results removed")
			}
		}
	}
}
