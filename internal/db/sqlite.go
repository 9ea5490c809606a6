package db

import (
	"log/slog"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// NewSQLite opens the sqlite database at path with foreign keys enforced.
// The pool is pinned to one connection: sqlite serializes writers anyway and an
// in-memory database only exists per connection.
func NewSQLite(path string, log *slog.Logger) (*gorm.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	gormDB, err := gorm.Open(sqlite.Open(dsn), gormConfig(log))
	if err != nil {
		return nil, errors.Wrap(err, "connect sqlite")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)
	return gormDB, nil
}
