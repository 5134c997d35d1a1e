package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorMessageAndUnwrap(t *testing.T) {
	err := NewCustomError(ErrEventNotFound, "Event not found.")

	assert.Equal(t, "Event not found.", err.Error())
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestCustomErrorFallsBackToWrappedMessage(t *testing.T) {
	err := &CustomError{Err: ErrConflict}
	assert.Equal(t, "conflict", err.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}

func TestConstructors(t *testing.T) {
	assert.ErrorIs(t, NewResourceNotFoundError("x"), ErrResourceNotFound)
	assert.ErrorIs(t, NewConflictError("x"), ErrConflict)
	assert.ErrorIs(t, NewForbiddenError("x"), ErrPermissionDenied)
	assert.ErrorIs(t, NewBadRequestError("x"), ErrBadRequest)
}

func TestWithDetailsAndCode(t *testing.T) {
	err := NewCustomError(ErrValidationFailed, "bad input").
		WithCode("VAL_001").
		WithDetails(map[string]interface{}{"field": "date"})

	assert.Equal(t, "VAL_001", err.Code)
	assert.Equal(t, "date", err.Details["field"])

	var custom *CustomError
	assert.True(t, errors.As(error(err), &custom))
}
