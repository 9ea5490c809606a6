package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tacocat/internal/errors"
)

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestFlash_RoundTrip(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	addFlash(c, apperrors.NewFlash(apperrors.FlashSuccess, "first"))
	addFlash(c, apperrors.NewFlash(apperrors.FlashError, "second"))

	cookie := findCookie(rec, flashCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, flashMaxAge, cookie.MaxAge)

	// The last Set-Cookie carries both messages.
	cookies := rec.Result().Cookies()
	last := cookies[len(cookies)-1]

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(last)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	flashes := consumeFlashes(c)
	assert.Equal(t, []apperrors.Flash{
		{Category: apperrors.FlashSuccess, Message: "first"},
		{Category: apperrors.FlashError, Message: "second"},
	}, flashes)

	cleared := findCookie(rec, flashCookieName)
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestFlash_ConsumeWithoutCookie(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	assert.Nil(t, consumeFlashes(c))
	assert.Nil(t, findCookie(rec, flashCookieName))
}

func TestFlash_ConsumeGarbage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%not-base64"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.Nil(t, consumeFlashes(c))
	// Garbage is still cleared.
	assert.NotNil(t, findCookie(rec, flashCookieName))
}
