package models

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NewValidationError("bad"), fiber.StatusBadRequest},
		{NewDuplicateEmailError(), fiber.StatusConflict},
		{NewUnauthorizedError("no"), fiber.StatusUnauthorized},
		{NewNotFoundError("Recipe", 1), fiber.StatusNotFound},
		{NewServiceUnavailableError("down", nil), fiber.StatusServiceUnavailable},
		{NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{errors.New("plain"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusForError(tc.err), "%v", tc.err)
	}
}

func TestIsCode(t *testing.T) {
	err := NewNotFoundError("Recipe", 5)
	assert.True(t, IsCode(err, "NOT_FOUND"))
	assert.False(t, IsCode(err, "VALIDATION_ERROR"))
	assert.False(t, IsCode(errors.New("plain"), "NOT_FOUND"))
	assert.False(t, IsCode(nil, "NOT_FOUND"))
}

func TestAppError_Error(t *testing.T) {
	bare := NewUnauthorizedError("Invalid credentials")
	assert.Equal(t, "Invalid credentials", bare.Error())

	wrapped := NewServiceUnavailableError("Recipe service is unavailable", errors.New("timeout"))
	assert.Equal(t, "Recipe service is unavailable: timeout", wrapped.Error())
	assert.EqualError(t, errors.Unwrap(wrapped), "timeout")
}
