// Command httpd runs the screener HTTP service: risk analysis of opportunity
// postings with an embedded lexicon, optional database-backed pattern
// overrides, and Prometheus metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/humai-verify/screener/internal/analyzer"
	"github.com/humai-verify/screener/internal/api"
	"github.com/humai-verify/screener/internal/config"
	"github.com/humai-verify/screener/internal/database"
	"github.com/humai-verify/screener/internal/extractor"
	"github.com/humai-verify/screener/internal/lexicon"
	"github.com/humai-verify/screener/internal/logger"
	"github.com/humai-verify/screener/internal/processor"
	"github.com/humai-verify/screener/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "screener: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting screener",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port))

	store, err := lexicon.Default()
	if err != nil {
		return fmt.Errorf("load embedded lexicon: %w", err)
	}

	// The database is optional. When configured it supplies lexicon pattern
	// overrides on top of the embedded defaults; when unreachable the
	// service still starts and reports degraded readiness.
	var (
		db   *database.LexiconRepository
		conn api.Pinger
	)
	if cfg.Database.Enabled() {
		sqlDB, dbErr := database.Connect(cfg.Database)
		if dbErr != nil {
			log.Warn("database unavailable, running with embedded lexicon only",
				logger.Error(dbErr))
		} else {
			defer sqlDB.Close()

			db = database.NewLexiconRepository(sqlDB)
			conn = sqlDB

			overrides, ovErr := db.OverridesByFactor(context.Background())
			if ovErr != nil {
				log.Warn("failed to load lexicon overrides", logger.Error(ovErr))
			} else if len(overrides) > 0 {
				merged, mergeErr := store.MergeOverrides(overrides)
				if mergeErr != nil {
					return fmt.Errorf("merge lexicon overrides: %w", mergeErr)
				}
				store = merged
				log.Info("lexicon overrides applied",
					logger.Int("factors", len(overrides)))
			}
		}
	}

	tp := telemetry.NewProvider()
	tp.SetLexiconPatterns(store.PatternCount())

	engine := analyzer.NewEngine(store, cfg.Analysis, cfg.Service.Version,
		extractor.New(log), log, tp)

	limiter := processor.NewRateLimiter(cfg.Service.BatchRPS, cfg.Service.BatchRPS, log)
	batch := processor.NewBatchProcessor(engine, limiter, cfg.Service.Concurrency, log, tp)

	handler := api.NewHandler(engine, batch, db, conn, tp, log, cfg.Service.BatchLimit)
	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, log)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("http server listening", logger.Int("port", cfg.Service.Port))
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err = <-serverErrors:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err = server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	log.Info("screener stopped")
	return nil
}
