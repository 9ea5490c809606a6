package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToFlash(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantOK  bool
		message string
	}{
		{name: "duplicate user", err: ErrDuplicateUser, wantOK: true, message: "User already exists."},
		{name: "wrapped duplicate user", err: fmt.Errorf("create user: %w", ErrDuplicateUser), wantOK: true, message: "User already exists."},
		{name: "invalid credentials", err: ErrInvalidCredentials, wantOK: true, message: "Your email or password doesn't match!"},
		{name: "unknown email looks the same", err: ErrUserNotFound, wantOK: true, message: "Your email or password doesn't match!"},
		{name: "invalid input", err: ErrInvalidInput, wantOK: true, message: "Please fill in all required fields."},
		{name: "storage fault", err: errors.New("disk on fire"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flash, ok := MapErrorToFlash(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, FlashError, flash.Category)
				assert.Equal(t, tt.message, flash.Message)
			}
		})
	}
}
