package service

import (
	"context"
	"io"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

type OverlapService interface {
	Analyze(ctx context.Context, sessionID string, r io.Reader) (*domain.AnalysisResult, error)
	GetResult(ctx context.Context, sessionID string) (*domain.AnalysisResult, error)
}
