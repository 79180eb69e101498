package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/bagdasarian/employees-pair/internal/handler"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	server *http.Server
	logger zerolog.Logger
}

func NewServer(h *handler.Handler, addr string, logger zerolog.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler.LoggingMiddleware(logger, handler.RecoveryMiddleware(mux)),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Handler возвращает корневой http.Handler со всеми middleware
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run обслуживает запросы до отмены ctx, затем выполняет graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.server.Addr).Msg("Server starting")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("Server stopped")
	return nil
}
