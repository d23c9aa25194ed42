package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cats-api/internal/errs"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const schema = `
CREATE TABLE IF NOT EXISTS "user" (
	user_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	user_name TEXT NOT NULL,
	role      TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user'))
);

CREATE TABLE IF NOT EXISTS cat (
	cat_id    INTEGER PRIMARY KEY AUTOINCREMENT,
	cat_name  TEXT NOT NULL,
	weight    REAL NOT NULL CHECK (weight > 0),
	filename  TEXT NOT NULL,
	birthdate TEXT NOT NULL,
	lat       REAL NOT NULL,
	lng       REAL NOT NULL,
	owner     INTEGER NOT NULL REFERENCES "user"(user_id)
);

CREATE INDEX IF NOT EXISTS idx_cat_owner ON cat(owner);
`

// Open abre la base SQLite. Las FKs se activan por conexión vía _pragma,
// así también aplican a conexiones que el pool recree.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if !strings.Contains(dsn, "foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	// un único escritor; además ":memory:" es una base distinta por conexión
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	return db, nil
}

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

// mapError traduce violaciones de constraints a errores 400 para el cliente.
func mapError(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}

	// según la build el código puede venir extendido o sólo el primario;
	// el byte bajo del extendido es siempre el primario
	code := se.Code()
	if code&0xff != sqlite3.SQLITE_CONSTRAINT {
		return err
	}

	switch {
	case code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, strings.Contains(se.Error(), "FOREIGN KEY"):
		return errs.NewBadRequestError("The referenced Owner does not exist").WithCause(err)
	default:
		return errs.NewBadRequestError("One or more values do not meet required conditions").WithCause(err)
	}
}
