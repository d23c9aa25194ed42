package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"cats-api/internal/config"
	"cats-api/internal/platform/logger"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open abre un pool database/sql sobre pgx. Con LOG_LEVEL=debug cada query
// se loguea vía pgx-zerolog.
func Open(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}

	zl := log.Zerolog()
	traceLevel := tracelog.LogLevelError
	if zl.GetLevel() <= zerolog.DebugLevel {
		traceLevel = tracelog.LogLevelInfo
	}
	connCfg.Tracer = &tracelog.TraceLog{
		Logger:   pgxzero.NewLogger(zl.With().Str("component", "pgx").Logger()),
		LogLevel: traceLevel,
	}

	db := stdlib.OpenDB(*connCfg)

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	log.Info("connected to the database", map[string]any{"driver": config.DriverPostgres})
	return db, nil
}

// Migrate aplica las migraciones embebidas con tern usando una conexión dedicada.
func Migrate(ctx context.Context, dsn string, log logger.Logger) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("postgres: migrate connect: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("postgres: constructing migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("postgres: migrations subtree: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("postgres: loading migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("postgres: current schema version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}

	to := int32(len(m.Migrations))
	if from == to {
		log.Info("database schema up to date", map[string]any{"version": to})
	} else {
		log.Info("migrated database schema", map[string]any{"from": from, "to": to})
	}
	return nil
}
