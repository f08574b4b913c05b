package handlers

import (
	"errors"
	"legal_case_app_go/schema"
	"legal_case_app_go/services"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "Validation",
			err:     &schema.ValidationError{Errors: []schema.FieldError{{Field: "name", Reason: "required"}}},
			code:    http.StatusBadRequest,
			message: "Validation error",
		},
		{
			name:    "NotFound",
			err:     services.ErrNotFound,
			code:    http.StatusNotFound,
			message: "Client not found",
		},
		{
			name:    "Constraint",
			err:     &services.ConstraintError{Constraint: services.ConstraintRestrict, Message: "client still has cases"},
			code:    http.StatusConflict,
			message: "Client still has cases",
		},
		{
			name:    "Storage",
			err:     &services.StorageError{Op: "list clients", Err: errors.New("disk I/O error")},
			code:    http.StatusInternalServerError,
			message: "Failed to fetch clients",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, _ := setupEcho(http.MethodGet, "/api/clients", nil)

			err := apiError(c, tt.err, "Client", "Failed to fetch clients")
			var he *echo.HTTPError
			require.True(t, errors.As(err, &he))
			assert.Equal(t, tt.code, he.Code)

			resp, ok := he.Message.(ErrorResponse)
			require.True(t, ok)
			assert.Equal(t, tt.message, resp.Message)
			// Driver text never reaches the client
			assert.NotContains(t, resp.Message, "disk")
		})
	}
}

func TestHTTPErrorHandler(t *testing.T) {
	setupTestDB(t)
	e := newTestServer(t)

	t.Run("UnknownRoute", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/nothing-here", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", decodeError(t, rec).Message)
	})

	t.Run("PlainError", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		HTTPErrorHandler(errors.New("boom"), c)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
	})
}

func TestParseID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3", "1.5", ""} {
		_, c, _ := setupEcho(http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(raw)

		_, err := parseID(c, "id", "Hearing")
		var he *echo.HTTPError
		require.True(t, errors.As(err, &he), raw)
		assert.Equal(t, http.StatusNotFound, he.Code)
		assert.Equal(t, ErrorResponse{Message: "Hearing not found"}, he.Message)
	}

	_, c, _ := setupEcho(http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues("42")
	id, err := parseID(c, "id", "Hearing")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestHealthHandler(t *testing.T) {
	setupTestDB(t)
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
