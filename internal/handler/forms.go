package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "tacocat/internal/errors"
)

// RegisterForm is the sign up form.
type RegisterForm struct {
	Email     string `form:"email" label:"Email" validate:"required,email"`
	Password  string `form:"password" label:"Password" validate:"required"`
	Password2 string `form:"password2" label:"Confirm password" validate:"required,eqfield=Password"`
}

// LoginForm is the log in form.
type LoginForm struct {
	Email    string `form:"email" label:"Email" validate:"required"`
	Password string `form:"password" label:"Password" validate:"required"`
}

// TacoForm is the taco creation form. Extras must be submitted but may be blank.
type TacoForm struct {
	Protein string `form:"protein" label:"Protein" validate:"required"`
	Shell   string `form:"shell" label:"Shell" validate:"required"`
	Cheese  string `form:"cheese" label:"Cheese"`
	Extras  string `form:"extras" label:"Extras"`
}

// CheeseChecked reports whether the cheese checkbox was ticked. Browsers send
// "on" for a checked box without a value; "false" and "0" count as unchecked.
func (f *TacoForm) CheeseChecked() bool {
	switch strings.ToLower(strings.TrimSpace(f.Cheese)) {
	case "", "false", "0", "off", "n", "no":
		return false
	default:
		return true
	}
}

var errBadForm = apperrors.NewFlash(apperrors.FlashError, "The form could not be read, please try again.")

// validationFlashes turns a validation error into one message per field.
func validationFlashes(err error) []apperrors.Flash {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperrors.Flash{apperrors.NewFlash(apperrors.FlashError, err.Error())}
	}

	flashes := make([]apperrors.Flash, 0, len(verrs))
	for _, fe := range verrs {
		flashes = append(flashes, apperrors.NewFlash(apperrors.FlashError, fieldMessage(fe)))
	}
	return flashes
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		return "Please enter a valid email address."
	case "eqfield":
		return "Passwords must match."
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}

// requireFields reports submitted forms that omit a field entirely.
func requireFields(values map[string][]string, fields ...string) []apperrors.Flash {
	var flashes []apperrors.Flash
	for _, field := range fields {
		if _, ok := values[field]; !ok {
			label := strings.ToUpper(field[:1]) + field[1:]
			flashes = append(flashes, apperrors.NewFlash(apperrors.FlashError, label+" is required."))
		}
	}
	return flashes
}
