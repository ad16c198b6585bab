package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := New(CodeNotFound, "customer", "Customer not found", http.StatusNotFound)
	assert.Equal(t, "[customer:NOT_FOUND] Customer not found", err.Error())

	wrapped := Wrap(stderrors.New("record not found"), CodeNotFound, "customer", "Customer not found", http.StatusNotFound)
	assert.Contains(t, wrapped.Error(), "record not found")
}

func TestWrap_Unwrap(t *testing.T) {
	cause := stderrors.New("db down")
	err := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	assert.True(t, Is(err, cause))

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, CodeInternalError, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
}

func TestMarshalJSON_HidesInternals(t *testing.T) {
	err := Wrap(stderrors.New("pq: connection refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	assert.NotContains(t, string(raw), "connection refused")
	assert.NotContains(t, string(raw), "HTTPCode")
	assert.Contains(t, string(raw), "INTERNAL_ERROR")
}

func TestValidationError_CarriesDetails(t *testing.T) {
	err := ValidationError(map[string]string{"email": "Must be a valid email address"})

	assert.Equal(t, CodeValidationFailed, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)

	raw, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.Contains(t, string(raw), "Must be a valid email address")
}

func TestWithDetails(t *testing.T) {
	err := NewBadRequestError("One or more recipients do not exist").WithDetails([]string{"abc"})
	assert.Equal(t, []string{"abc"}, err.Details)
}

func TestHelperStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("nope").HTTPCode)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("nope").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("nope").HTTPCode)
	assert.Equal(t, http.StatusInternalServerError, InternalError(stderrors.New("x")).HTTPCode)
}
