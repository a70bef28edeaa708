// Package db opens the local client database and applies the embedded
// goose migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/econdash/internal/client/migrations"

	_ "modernc.org/sqlite"
)

// RunMigrations applies all pending migrations from the embedded FS.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the sqlite database at dsn and brings
// its schema up to date.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := RunMigrations(ctx, database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return database, nil
}
