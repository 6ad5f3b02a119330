package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maternity-journal/internal/adapters/auth/idp"
	mem "maternity-journal/internal/adapters/storage/memory"
	pg "maternity-journal/internal/adapters/storage/postgres"
	lite "maternity-journal/internal/adapters/storage/sqlite"
	"maternity-journal/internal/domain/gestation"
	"maternity-journal/internal/domain/schedule"
	"maternity-journal/internal/platform/config"
	"maternity-journal/internal/platform/logger"
	"maternity-journal/internal/ports/auth"
	"maternity-journal/internal/router"
)

// @title Maternity Journal API
// @version 1.0
// @description Línea de tiempo gestacional y agenda con eventos recurrentes.
// @BasePath /
func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})

	anchors, entries, closeStore, err := openStorage(cfg.Storage)
	if err != nil {
		log.Error("storage init failed", map[string]any{"driver": cfg.Storage.Driver, "error": err.Error()})
		os.Exit(1)
	}
	defer closeStore.Close()

	verifier, err := newVerifier(cfg)
	if err != nil {
		log.Error("auth init failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if verifier == nil {
		log.Warn("auth verifier disabled, accepting X-Debug-User-ID", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:   verifier,
		Anchors:        anchors,
		Entries:        entries,
		Logger:         log,
		UpcomingDays:   cfg.Schedule.UpcomingDays,
		MaxOccurrences: cfg.Schedule.MaxOccurrences,
	})

	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Listen, "storage": cfg.Storage.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
	log.Info("server stopped", nil)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStorage arma los repos según storage.driver.
func openStorage(sc config.StorageConfig) (gestation.Repository, schedule.Repository, io.Closer, error) {
	switch sc.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(sc.DSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		return pg.NewAnchorsRepo(db), pg.NewEntriesRepo(db), db, nil

	case config.DriverSQLite:
		db, err := lite.NewDB(sc.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, nil, err
		}
		return lite.NewAnchorRepository(db), lite.NewEntryRepository(db), sqlDB, nil

	default:
		return mem.NewAnchorRepo(), mem.NewEntryRepo(), nopCloser{}, nil
	}
}

// newVerifier devuelve nil (modo dev) si no hay auth.base_url.
func newVerifier(cfg *config.Config) (auth.AuthVerifier, error) {
	if cfg.Auth.BaseURL == "" {
		return nil, nil
	}
	client, err := idp.NewClient(idp.Config{
		BaseURL:      cfg.Auth.BaseURL,
		APIKey:       cfg.Auth.APIKey,
		APIKeyHeader: cfg.Auth.APIKeyHeader,
		Timeout:      cfg.Auth.Timeout,
		UserAgent:    cfg.AppName,
	})
	if err != nil {
		return nil, err
	}
	if !client.IsConfigured() {
		return nil, errors.New("auth.base_url set but auth.api_key is empty")
	}
	return idp.NewVerifier(client), nil
}
