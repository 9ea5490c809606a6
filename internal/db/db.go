// Package db opens the gorm connection pool and prepares the schema.
package db

import (
	"log/slog"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"tacocat/internal/config"
	"tacocat/internal/model"
)

// Open returns a connected GORM DB for the configured driver.
func Open(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	var (
		gormDB *gorm.DB
		err    error
	)
	switch cfg.DBDriver {
	case config.DriverMySQL:
		gormDB, err = NewMySQL(cfg.MySQLDSN, log)
	case config.DriverSQLite:
		gormDB, err = NewSQLite(cfg.SQLitePath, log)
	default:
		return nil, errors.Errorf("unsupported driver %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, err
	}

	// sqlite is pinned to a single connection in NewSQLite.
	if cfg.DBDriver == config.DriverMySQL {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, errors.Wrap(err, "get sql.DB")
		}
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	return gormDB, nil
}

// Migrate creates or updates the users and tacos tables.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(&model.User{}, &model.Taco{}); err != nil {
		return errors.Wrap(err, "auto-migrate")
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	return sqlDB.Close()
}

func gormConfig(log *slog.Logger) *gorm.Config {
	return &gorm.Config{
		// Constraint violations surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
		TranslateError: true,
		Logger:         newGormSlogLogger(log),
	}
}
