package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	// DriverSQLite stores data in a local sqlite file.
	DriverSQLite = "sqlite"
	// DriverMySQL stores data in MySQL.
	DriverMySQL = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string        `env:"SERVER_PORT" envDefault:"8080"`
	Env             string        `env:"ENV" envDefault:"local"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DBDriver       string `env:"DB_DRIVER" envDefault:"sqlite"`
	MySQLDSN       string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/tacocat?charset=utf8mb4&parseTime=True&loc=Local"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"tacos.db"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass string `env:"REDIS_PASSWORD"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"change-me"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`
	CSRFEnabled   bool          `env:"CSRF_ENABLED" envDefault:"true"`
	BcryptCost    int           `env:"BCRYPT_COST" envDefault:"10"`

	FeedLimit int `env:"FEED_LIMIT" envDefault:"100"`

	// Default user created at startup. Seeding is skipped when SeedEmail is empty.
	SeedEmail    string `env:"SEED_EMAIL"`
	SeedPassword string `env:"SEED_PASSWORD"`
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration that cannot be used to start the service.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverMySQL:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.SeedEmail != "" && c.SeedPassword == "" {
		return fmt.Errorf("SEED_PASSWORD is required when SEED_EMAIL is set")
	}
	return nil
}
