package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tacocat/internal/errors"
)

const (
	flashCookieName = "flash"
	flashMaxAge     = 60
)

// addFlash queues a message for the next rendered page.
func addFlash(c echo.Context, flash apperrors.Flash) {
	flashes := append(pendingFlashes(c), flash)
	payload, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	c.Set(flashCookieName, flashes)
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func pendingFlashes(c echo.Context) []apperrors.Flash {
	flashes, _ := c.Get(flashCookieName).([]apperrors.Flash)
	return flashes
}

// consumeFlashes reads the flash cookie of the request and clears it.
// Unreadable cookies are dropped silently.
func consumeFlashes(c echo.Context) []apperrors.Flash {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flashes []apperrors.Flash
	if err := json.Unmarshal(payload, &flashes); err != nil {
		return nil
	}
	return flashes
}
