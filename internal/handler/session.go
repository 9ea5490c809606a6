package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tacocat/internal/auth"
	apperrors "tacocat/internal/errors"
	"tacocat/internal/logger"
	"tacocat/internal/service"
)

// SessionCookies describes how the session cookie is written.
type SessionCookies struct {
	TTL    time.Duration
	Secure bool
}

func (s SessionCookies) set(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.TTL.Seconds()),
		Expires:  time.Now().Add(s.TTL),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s SessionCookies) clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionMiddleware resolves the session cookie into the request's user.
type SessionMiddleware struct {
	authService service.AuthService
	cookies     SessionCookies
	log         *slog.Logger
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(authService service.AuthService, cookies SessionCookies, log *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{authService: authService, cookies: cookies, log: log}
}

// Load attaches the authenticated user to the context when the request carries
// a valid session. Invalid sessions are cleared and the request continues anonymously.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(auth.CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		claims, user, err := m.authService.Authenticate(c.Request().Context(), cookie.Value)
		switch {
		case err == nil:
			c.Set(ctxKeyUser, user)
			c.Set(ctxKeySession, claims)
		case errors.Is(err, apperrors.ErrSessionInvalid):
			m.cookies.clear(c)
		default:
			m.log.ErrorContext(c.Request().Context(), "resolve session", logger.Err(err))
			return err
		}
		return next(c)
	}
}

// ParseToken is the echo-jwt parse function for protected routes. The token was
// already resolved by Load, so it only confirms that resolution succeeded.
func (m *SessionMiddleware) ParseToken(c echo.Context, _ string) (interface{}, error) {
	claims := currentSession(c)
	if _, ok := CurrentUser(c); !ok || claims == nil {
		return nil, apperrors.ErrSessionInvalid
	}
	return claims, nil
}

// RedirectToLogin is the echo-jwt error handler for protected routes.
func (m *SessionMiddleware) RedirectToLogin(c echo.Context, _ error) error {
	return c.Redirect(http.StatusFound, "/login")
}
