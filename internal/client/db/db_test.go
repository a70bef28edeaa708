package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

// No driver import here on purpose: Open must work with only this package's
// own registration, the same way the production binary runs it.

func TestOpen_RegistersDriver(t *testing.T) {
	require.Contains(t, sql.Drivers(), "sqlite")
}

func TestOpen_AppliesMigrations(t *testing.T) {
	database, err := Open(context.Background(), "file:dbopen?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	// the session table must exist after migration
	_, err = database.Exec(`INSERT INTO session(key, value) VALUES('user', 'x')`)
	require.NoError(t, err)
}

func TestOpen_IsIdempotent(t *testing.T) {
	dsn := "file:dbreopen?mode=memory&cache=shared"

	first, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Close() })

	second, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
}
