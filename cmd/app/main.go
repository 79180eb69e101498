package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/bagdasarian/employees-pair/internal/config"
	"github.com/bagdasarian/employees-pair/internal/db"
	"github.com/bagdasarian/employees-pair/internal/handler"
	"github.com/bagdasarian/employees-pair/internal/handler/server"
	"github.com/bagdasarian/employees-pair/internal/logger"
	"github.com/bagdasarian/employees-pair/internal/repository"
	"github.com/bagdasarian/employees-pair/internal/repository/memory"
	"github.com/bagdasarian/employees-pair/internal/repository/postgres"
	"github.com/bagdasarian/employees-pair/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	log.Logger = logger.New(cfg.Log.Level, os.Stdout)

	resultRepo, closeStore, err := newResultRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Overlap.ResultStore).Msg("result store init failed")
	}
	defer closeStore()

	overlapService := service.NewOverlapService(
		resultRepo,
		time.Now,
		service.OverlapConfig{
			ResultTTL:         cfg.Overlap.ResultTTL,
			DistinctEmployees: cfg.Overlap.DistinctEmployees,
		},
		log.Logger,
	)

	h := handler.NewHandler(overlapService, cfg.HTTP.UploadMaxBytes)
	srv := server.NewServer(h, cfg.HTTP.Addr, log.Logger)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return srv.Run(gctx)
	})

	group.Go(func() error {
		return repository.RunSweeper(gctx, resultRepo, cfg.Overlap.SweepInterval, log.Logger)
	})

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("service stopped with error")
		return
	}

	log.Info().Msg("all services stopped")
}

func newResultRepository(ctx context.Context, cfg *config.Config) (repository.ResultRepository, func(), error) {
	switch cfg.Overlap.ResultStore {
	case config.StorePostgres:
		database, err := db.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("Successfully connected to database!")
		return postgres.NewResultRepository(database), closeDB(database), nil
	default:
		if cfg.Overlap.ResultStore != config.StoreMemory {
			log.Warn().Str("store", cfg.Overlap.ResultStore).Msg("unknown result store, falling back to memory")
		}
		return memory.NewResultRepository(), func() {}, nil
	}
}

func closeDB(database *sql.DB) func() {
	return func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}
}
