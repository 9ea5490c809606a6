package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tacocat/internal/service"
	"tacocat/internal/web"
)

// PageHandler serves the homepage feed.
type PageHandler struct {
	tacoService service.TacoService
	feedLimit   int
}

// NewPageHandler creates a new page handler.
func NewPageHandler(tacoService service.TacoService, feedLimit int) *PageHandler {
	return &PageHandler{tacoService: tacoService, feedLimit: feedLimit}
}

// Index renders the taco feed.
func (h *PageHandler) Index(c echo.Context) error {
	tacos, err := h.tacoService.ListTacos(c.Request().Context(), h.feedLimit)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, web.PageIndex, pageData{Tacos: tacos})
}
