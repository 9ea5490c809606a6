// Package app assembles the HTTP application from its dependencies.
package app

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tacocat/internal/auth"
	"tacocat/internal/cache"
	"tacocat/internal/config"
	"tacocat/internal/handler"
	"tacocat/internal/repository"
	"tacocat/internal/router"
	"tacocat/internal/service"
	"tacocat/internal/web"
)

// App is a fully wired application.
type App struct {
	Echo  *echo.Echo
	Users service.UserService
	Tacos service.TacoService
	Auth  service.AuthService
}

// New wires repositories, services, handlers and routes. A nil cache client
// runs without caching and without session revocation.
func New(cfg *config.Config, log *slog.Logger, gormDB *gorm.DB, cacheClient *cache.Client) (*App, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tacoRepo := repository.NewTacoRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	var tokenStore auth.TokenStoreInterface
	if cacheClient != nil {
		tokenStore = auth.NewTokenStore(cacheClient)
	}
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, tokenStore)

	// Initialize services
	userService := service.NewUserService(userRepo, hasher, cacheClient)
	tacoService := service.NewTacoService(tacoRepo)
	authService := service.NewAuthService(userService, hasher, sessions)

	// Initialize handlers
	cookies := handler.SessionCookies{TTL: cfg.SessionTTL, Secure: cfg.CookieSecure}
	sessionMiddleware := handler.NewSessionMiddleware(authService, cookies, log)
	pageHandler := handler.NewPageHandler(tacoService, cfg.FeedLimit)
	authHandler := handler.NewAuthHandler(userService, authService, cookies)
	tacoHandler := handler.NewTacoHandler(tacoService)

	router.Register(e, cfg, log, sessionMiddleware, pageHandler, authHandler, tacoHandler)

	return &App{Echo: e, Users: userService, Tacos: tacoService, Auth: authService}, nil
}
