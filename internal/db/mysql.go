package db

import (
	"log/slog"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string, log *slog.Logger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(mysql.Open(dsn), gormConfig(log))
	if err != nil {
		return nil, errors.Wrap(err, "connect mysql")
	}
	return gormDB, nil
}
