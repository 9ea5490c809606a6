package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "tacocat/internal/errors"
	"tacocat/internal/service"
	"tacocat/internal/web"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	userService service.UserService
	authService service.AuthService
	cookies     SessionCookies
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService service.UserService, authService service.AuthService, cookies SessionCookies) *AuthHandler {
	return &AuthHandler{userService: userService, authService: authService, cookies: cookies}
}

// RegisterForm renders the sign up form.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return render(c, http.StatusOK, web.PageRegister, pageData{Title: "Sign up"})
}

// Register creates the account and sends the user to the homepage.
func (h *AuthHandler) Register(c echo.Context) error {
	var form RegisterForm
	data := pageData{Title: "Sign up", Form: &form}
	if err := c.Bind(&form); err != nil {
		data.Flashes = append(data.Flashes, errBadForm)
		return render(c, http.StatusOK, web.PageRegister, data)
	}
	form.Email = strings.TrimSpace(form.Email)
	if err := c.Validate(&form); err != nil {
		data.Flashes = validationFlashes(err)
		return render(c, http.StatusOK, web.PageRegister, data)
	}

	if _, err := h.userService.CreateUser(c.Request().Context(), form.Email, form.Password); err != nil {
		flash, ok := apperrors.MapErrorToFlash(err)
		if !ok {
			return err
		}
		data.Flashes = append(data.Flashes, flash)
		return render(c, http.StatusOK, web.PageRegister, data)
	}

	return redirectHome(c, apperrors.NewFlash(apperrors.FlashSuccess, "You registered"))
}

// LoginForm renders the log in form.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return render(c, http.StatusOK, web.PageLogin, pageData{Title: "Log in"})
}

// Login checks the credentials and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var form LoginForm
	data := pageData{Title: "Log in", Form: &form}
	if err := c.Bind(&form); err != nil {
		data.Flashes = append(data.Flashes, errBadForm)
		return render(c, http.StatusOK, web.PageLogin, data)
	}
	form.Email = strings.TrimSpace(form.Email)
	if err := c.Validate(&form); err != nil {
		data.Flashes = validationFlashes(err)
		return render(c, http.StatusOK, web.PageLogin, data)
	}

	token, _, err := h.authService.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			return err
		}
		flash, _ := apperrors.MapErrorToFlash(err)
		data.Flashes = append(data.Flashes, flash)
		return render(c, http.StatusOK, web.PageLogin, data)
	}

	h.cookies.set(c, token)
	return redirectHome(c, apperrors.NewFlash(apperrors.FlashSuccess, "You've been logged in"))
}

// Logout ends the current session. Only reachable with a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), currentSession(c)); err != nil {
		return err
	}
	h.cookies.clear(c)
	return redirectHome(c, apperrors.NewFlash(apperrors.FlashSuccess, "You've been logged out!"))
}
