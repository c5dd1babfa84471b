package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/worldatlas/globequiz/internal/config"
	"github.com/worldatlas/globequiz/internal/database"
	"github.com/worldatlas/globequiz/internal/dataset"
	"github.com/worldatlas/globequiz/internal/geo"
	"github.com/worldatlas/globequiz/internal/migrations"
	"github.com/worldatlas/globequiz/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating db dir: %w", err)
		}
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Country catalogue ---
	// No round ever starts without a populated index, so a load failure
	// is fatal rather than degraded.
	records, err := dataset.NewLoader(logger, cfg.GeoURL, cfg.MetaURL).Load(ctx)
	if err != nil {
		return fmt.Errorf("loading country catalogue: %w", err)
	}
	index, err := geo.BuildIndex(records, geo.DefaultAliases())
	if err != nil {
		return fmt.Errorf("building geo index: %w", err)
	}

	// --- Game sessions ---
	settings := server.NewSQLiteSettings(db)
	broker := server.NewBroker()
	sessions := server.NewRegistry(logger, broker, settings,
		time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	defer sessions.Close()

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, db, settings, index, sessions, broker, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		sessions.RunJanitor(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
