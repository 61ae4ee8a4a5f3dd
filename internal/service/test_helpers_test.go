package service_test

import (
	"path/filepath"
	"testing"

	"github.com/fitquest/fitquest-cli/internal/db"
	"github.com/fitquest/fitquest-cli/internal/store"
)

func newTestStore(t *testing.T) *store.SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitquest.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return store.NewSQLite(sqldb)
}
