// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todo-service/internal/infrastructure/db"
)

// Open returns a migrated, private in-memory database with foreign keys enforced.
// A single connection keeps every query on the same memory database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(db.Options{
		Driver:       db.DriverSQLite,
		DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		_ = db.Close(gdb)
	})
	return gdb
}
