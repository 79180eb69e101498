package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bagdasarian/employees-pair/internal/domain"
	"github.com/bagdasarian/employees-pair/internal/repository"
)

type OverlapConfig struct {
	ResultTTL         time.Duration
	DistinctEmployees bool
}

type overlapService struct {
	resultRepo repository.ResultRepository
	clock      Clock
	config     OverlapConfig
	logger     zerolog.Logger
}

// NewOverlapService создает новый экземпляр OverlapService
func NewOverlapService(
	resultRepo repository.ResultRepository,
	clock Clock,
	config OverlapConfig,
	logger zerolog.Logger,
) OverlapService {
	if clock == nil {
		clock = time.Now
	}
	return &overlapService{
		resultRepo: resultRepo,
		clock:      clock,
		config:     config,
		logger:     logger.With().Str("component", "overlap_service").Logger(),
	}
}

// Analyze разбирает CSV, находит лучшую пару и сохраняет ее общую историю за сессией
func (s *overlapService) Analyze(ctx context.Context, sessionID string, r io.Reader) (*domain.AnalysisResult, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	assignments, err := ParseAssignments(r)
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to parse assignments")
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.clock()
	entries, err := FindOverlaps(assignments, truncateToDate(now), FinderOptions{
		DistinctEmployees: s.config.DistinctEmployees,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to build shared history")
		return nil, err
	}

	if err := s.resultRepo.Save(ctx, sessionID, entries, now.Add(s.config.ResultTTL)); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Int("assignments", len(assignments)).
		Int("entries", len(entries)).
		Msg("analysis completed")

	return &domain.AnalysisResult{
		SessionID: sessionID,
		Entries:   entries,
	}, nil
}

// GetResult возвращает последний сохраненный результат сессии
func (s *overlapService) GetResult(ctx context.Context, sessionID string) (*domain.AnalysisResult, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	entries, err := s.resultRepo.GetBySessionID(ctx, sessionID, s.clock())
	if err != nil {
		return nil, err
	}

	return &domain.AnalysisResult{
		SessionID: sessionID,
		Entries:   entries,
	}, nil
}

func validateSessionID(sessionID string) error {
	if sessionID == "" {
		return domain.NewBadRequestError("session_id is required")
	}
	if _, err := uuid.Parse(sessionID); err != nil {
		return domain.NewBadRequestError("session_id must be a valid UUID")
	}
	return nil
}
