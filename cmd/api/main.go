package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cats-api/internal/adapters/auth/remote"
	pg "cats-api/internal/adapters/storage/postgres"
	lite "cats-api/internal/adapters/storage/sqlite"
	"cats-api/internal/config"
	"cats-api/internal/platform/logger"
	"cats-api/internal/ports/auth"
	"cats-api/internal/router"
)

// @title Cats API
// @version 1.0
// @description CRUD de gatos con dueño, más un runner de smoke tests contra otras instancias.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cats-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	var verifier auth.AuthVerifier // nil => modo dev con X-Debug-User-ID
	if cfg.Auth.VerifyURL != "" {
		verifier = remote.NewVerifier(remote.Config{
			VerifyURL: cfg.Auth.VerifyURL,
			APIKey:    cfg.Auth.APIKey,
			Timeout:   cfg.Auth.VerifyTimeout,
		})
	} else if !cfg.IsLocal() {
		log.Warn("no token verifier configured, accepting debug headers", map[string]any{"env": cfg.App.Env})
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Config:       cfg,
			Log:          log,
			AuthVerifier: verifier,
			DB:           db,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "driver": cfg.Database.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// openDatabase devuelve nil para el driver memory.
func openDatabase(ctx context.Context, cfg *config.Config, log logger.Logger) (*sql.DB, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		if cfg.Database.Migrate {
			if err := pg.Migrate(ctx, cfg.Database.DSN, log); err != nil {
				return nil, err
			}
		}
		return pg.Open(ctx, cfg.Database, log)

	case config.DriverSQLite:
		db, err := lite.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		if cfg.Database.Migrate {
			if err := lite.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		log.Info("connected to the database", map[string]any{"driver": config.DriverSQLite})
		return db, nil

	default:
		log.Warn("using in-memory storage; data is lost on restart", nil)
		return nil, nil
	}
}
