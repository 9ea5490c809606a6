package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tacocat/internal/auth"
	apperrors "tacocat/internal/errors"
	"tacocat/internal/model"
)

// Context keys set by SessionMiddleware.
const (
	ctxKeyUser    = "currentUser"
	ctxKeySession = "currentSession"
)

// pageData is passed to every template.
type pageData struct {
	Title   string
	User    *model.User
	Flashes []apperrors.Flash
	CSRF    string
	Form    any
	Tacos   []model.Taco
}

// CurrentUser returns the authenticated user of the request, if any.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ctxKeyUser).(*model.User)
	return user, ok && user != nil
}

func currentSession(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ctxKeySession).(*auth.Claims)
	return claims
}

// render writes a page. Flashes queued by a previous redirect are consumed and
// shown before the ones passed in data.
func render(c echo.Context, status int, page string, data pageData) error {
	data.User, _ = CurrentUser(c)
	data.Flashes = append(consumeFlashes(c), data.Flashes...)
	if token, ok := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string); ok {
		data.CSRF = token
	}
	return c.Render(status, page, data)
}

// redirectHome finishes a successful form submission.
func redirectHome(c echo.Context, flash apperrors.Flash) error {
	addFlash(c, flash)
	return c.Redirect(http.StatusFound, "/")
}
