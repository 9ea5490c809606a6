package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tacocat/internal/errors"
	"tacocat/internal/service"
	"tacocat/internal/web"
)

// TacoHandler handles taco creation.
type TacoHandler struct {
	tacoService service.TacoService
}

// NewTacoHandler creates a new taco handler.
func NewTacoHandler(tacoService service.TacoService) *TacoHandler {
	return &TacoHandler{tacoService: tacoService}
}

// Form renders the taco creation form.
func (h *TacoHandler) Form(c echo.Context) error {
	return render(c, http.StatusOK, web.PageTaco, pageData{Title: "Add a new taco"})
}

// Create stores a taco owned by the logged-in user.
func (h *TacoHandler) Create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	var form TacoForm
	data := pageData{Title: "Add a new taco", Form: &form}
	if err := c.Bind(&form); err != nil {
		data.Flashes = append(data.Flashes, errBadForm)
		return render(c, http.StatusOK, web.PageTaco, data)
	}
	if err := c.Validate(&form); err != nil {
		data.Flashes = validationFlashes(err)
	}
	values, err := c.FormParams()
	if err != nil {
		return err
	}
	data.Flashes = append(data.Flashes, requireFields(values, "extras")...)
	if len(data.Flashes) > 0 {
		return render(c, http.StatusOK, web.PageTaco, data)
	}

	_, err = h.tacoService.CreateTaco(c.Request().Context(), user.ID, service.TacoInput{
		Protein: form.Protein,
		Shell:   form.Shell,
		Cheese:  form.CheeseChecked(),
		Extras:  form.Extras,
	})
	if errors.Is(err, apperrors.ErrSessionInvalid) {
		// The owner disappeared after the session was resolved.
		return c.Redirect(http.StatusFound, "/login")
	}
	if err != nil {
		flash, ok := apperrors.MapErrorToFlash(err)
		if !ok {
			return err
		}
		data.Flashes = append(data.Flashes, flash)
		return render(c, http.StatusOK, web.PageTaco, data)
	}

	return redirectHome(c, apperrors.NewFlash(apperrors.FlashSuccess, "Taco has been created!"))
}
