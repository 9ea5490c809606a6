package errors

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when a required value is missing.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches a lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionInvalid is returned for expired, revoked or malformed sessions.
	ErrSessionInvalid = errors.New("invalid or expired session")
)

// Flash categories understood by the templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-time user-facing status message.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// NewFlash creates a new flash message.
func NewFlash(category, message string) Flash {
	return Flash{Category: category, Message: message}
}

// MapErrorToFlash maps domain errors to the message shown on a re-rendered form.
// ok is false for errors that are not the user's fault and must not be rendered.
func MapErrorToFlash(err error) (flash Flash, ok bool) {
	switch {
	case errors.Is(err, ErrDuplicateUser):
		return NewFlash(FlashError, "User already exists."), true
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUserNotFound):
		// Never reveal which half of the credentials was wrong.
		return NewFlash(FlashError, "Your email or password doesn't match!"), true
	case errors.Is(err, ErrInvalidInput):
		return NewFlash(FlashError, "Please fill in all required fields."), true
	default:
		return Flash{}, false
	}
}
