package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"tacocat/internal/auth"
	"tacocat/internal/config"
	"tacocat/internal/db"
	"tacocat/internal/logger"
	"tacocat/internal/repository"
	"tacocat/internal/service"
)

// seedTaco is one entry of the sample tacos file.
type seedTaco struct {
	Protein string `json:"protein"`
	Shell   string `json:"shell"`
	Cheese  bool   `json:"cheese"`
	Extras  string `json:"extras"`
}

func main() {
	tacosPath := flag.String("tacos", "", "JSON file with sample tacos owned by the default user")
	flag.Parse()

	if err := run(*tacosPath); err != nil {
		logger.Fatal("seed", err)
	}
}

// run seeds the database. The connection is closed before returning on every path.
func run(tacosPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config")
	}
	log, err := logger.New(os.Stdout, cfg.Env, cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	if cfg.SeedEmail == "" {
		return errors.New("SEED_EMAIL and SEED_PASSWORD are required")
	}

	gormDB, err := db.Open(cfg, log)
	if err != nil {
		return errors.Wrap(err, "database init")
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Warn("database close", logger.Err(err))
		}
	}()

	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	log.Info("database migrations completed")

	ctx := context.Background()
	users := service.NewUserService(repository.NewUserRepository(gormDB), auth.NewBcryptHasher(cfg.BcryptCost), nil)
	tacos := service.NewTacoService(repository.NewTacoRepository(gormDB))

	user, err := users.EnsureUser(ctx, cfg.SeedEmail, cfg.SeedPassword)
	if err != nil {
		return errors.Wrap(err, "seed default user")
	}
	log.Info("default user ready", "user_id", user.ID, "email", user.Email)

	if tacosPath == "" {
		return nil
	}
	samples, err := loadTacos(tacosPath)
	if err != nil {
		return err
	}
	created, err := seedTacos(ctx, tacos, user.ID, samples)
	if err != nil {
		return errors.Wrap(err, "seed tacos")
	}
	log.Info("seed completed", "tacos_created", created)
	return nil
}

// loadTacos reads the sample tacos file.
func loadTacos(path string) ([]seedTaco, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read tacos file")
	}
	var samples []seedTaco
	if err := json.Unmarshal(body, &samples); err != nil {
		return nil, errors.Wrap(err, "parse tacos file")
	}
	return samples, nil
}

// seedTacos creates every sample taco for ownerID.
func seedTacos(ctx context.Context, tacos service.TacoService, ownerID uint, samples []seedTaco) (int, error) {
	created := 0
	for i, sample := range samples {
		_, err := tacos.CreateTaco(ctx, ownerID, service.TacoInput{
			Protein: sample.Protein,
			Shell:   sample.Shell,
			Cheese:  sample.Cheese,
			Extras:  sample.Extras,
		})
		if err != nil {
			return created, errors.Wrapf(err, "taco %d", i)
		}
		created++
	}
	return created, nil
}
