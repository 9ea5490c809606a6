package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tacocat/internal/app"
	"tacocat/internal/cache"
	"tacocat/internal/config"
	"tacocat/internal/db"
	"tacocat/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", err)
	}

	log, err := logger.New(os.Stdout, cfg.Env, cfg.LogLevel)
	if err != nil {
		logger.Fatal("logger", err)
	}

	gormDB, err := db.Open(cfg, log)
	if err != nil {
		log.Error("database init", logger.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Warn("database close", logger.Err(err))
		}
	}()

	if err := db.Migrate(gormDB); err != nil {
		log.Error("migrate", logger.Err(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warn("redis unavailable, running without cache", logger.Err(err), "addr", cfg.RedisAddr)
		_ = cacheClient.Close()
		cacheClient = nil
	} else {
		defer cacheClient.Close()
	}

	application, err := app.New(cfg, log, gormDB, cacheClient)
	if err != nil {
		log.Error("app init", logger.Err(err))
		os.Exit(1)
	}

	if cfg.SeedEmail != "" {
		user, err := application.Users.EnsureUser(ctx, cfg.SeedEmail, cfg.SeedPassword)
		if err != nil {
			log.Error("seed default user", logger.Err(err))
			os.Exit(1)
		}
		log.Info("default user ready", "user_id", user.ID, "email", user.Email)
	}

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", "addr", addr, "db_driver", cfg.DBDriver)
		if err := application.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server start", logger.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := application.Echo.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", logger.Err(err))
	}
	log.Info("server stopped")
}
