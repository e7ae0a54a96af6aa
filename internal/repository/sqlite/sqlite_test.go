package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/msomdec/inkwell/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew_Configuration(t *testing.T) {
	db := newTestDB(t)

	var fkEnabled int
	if err := db.SqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("check foreign_keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Fatal("expected foreign keys to be enabled")
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Running migrations a second time must be a no-op.
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	// The users table exists and accepts rows.
	_, err := db.SqlDB.ExecContext(ctx,
		`INSERT INTO users (email, full_name, password_hash, password_salt, created_at, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		"migrate@example.com", "Migrate User", "hash", "salt",
	)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
}
