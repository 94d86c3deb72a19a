package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsSentinel(t *testing.T) {
	err := NewAppError(500, "failed to find grn", ErrNotFound)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "failed to find grn: resource not found", err.Error())

	wrapped := fmt.Errorf("loading: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestAppError_NoCause(t *testing.T) {
	err := NewAppError(400, "invalid page", nil)
	assert.Equal(t, "invalid page", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestValidationf(t *testing.T) {
	err := Validationf("quantity must be at least %d", 1)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "validation error: quantity must be at least 1", err.Error())
}
