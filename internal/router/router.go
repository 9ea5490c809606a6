package router

import (
	"log/slog"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"

	"tacocat/internal/auth"
	"tacocat/internal/config"
	"tacocat/internal/handler"
	"tacocat/internal/validator"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *slog.Logger,
	sessionMiddleware *handler.SessionMiddleware,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	tacoHandler *handler.TacoHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(slogecho.New(log))
	e.Use(middleware.Recover())
	if cfg.CSRFEnabled {
		e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
			TokenLookup:    "form:csrf",
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   cfg.CookieSecure,
			CookieSameSite: http.SameSiteLaxMode,
		}))
	}
	e.Use(sessionMiddleware.Load)

	e.Validator = validator.New()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public routes
	e.GET("/", pageHandler.Index)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)

	// Secured routes (require a session, anonymous requests go to /login)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup:    "cookie:" + auth.CookieName,
		ParseTokenFunc: sessionMiddleware.ParseToken,
		ErrorHandler:   sessionMiddleware.RedirectToLogin,
	}))

	secured.GET("/logout", authHandler.Logout)
	secured.GET("/taco", tacoHandler.Form)
	secured.POST("/taco", tacoHandler.Create)
}
