// Package testutil holds helpers shared by package tests.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"gorm.io/gorm"

	"tacocat/internal/db"
)

// NewDB returns a migrated in-memory sqlite database that is closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.NewSQLite(db.MemoryPath, DiscardLogger())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(gormDB)
	})
	return gormDB
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
