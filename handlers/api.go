package handlers

import (
	"errors"
	"io"
	"legal_case_app_go/schema"
	"legal_case_app_go/services"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every failed API call
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []schema.FieldError `json:"errors,omitempty"`
}

// MessageResponse acknowledges an operation without returning a record
type MessageResponse struct {
	Message string `json:"message"`
}

// maxBodyBytes caps how much of a request body is read
const maxBodyBytes = 1 << 20

func newAPIError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, ErrorResponse{Message: message})
}

// apiError maps a schema or service error to its HTTP response. Anything
// unclassified becomes a 500 carrying only the generic fallback message.
func apiError(c echo.Context, err error, entity, fallback string) error {
	var verr *schema.ValidationError
	var cerr *services.ConstraintError

	switch {
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Message: "Validation error", Errors: verr.Errors})
	case services.IsNotFound(err):
		return newAPIError(http.StatusNotFound, entity+" not found")
	case errors.As(err, &cerr):
		return newAPIError(http.StatusConflict, capitalize(cerr.Message))
	case errors.Is(err, services.ErrNotDeliverable):
		return newAPIError(http.StatusBadRequest, capitalize(err.Error()))
	}

	zap.L().Error(fallback,
		zap.Error(err),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.String("path", c.Path()),
	)
	return newAPIError(http.StatusInternalServerError, fallback)
}

// parseID reads a numeric path parameter. Anything that is not a positive
// integer cannot name a record, so it is reported as not found.
func parseID(c echo.Context, param, entity string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, newAPIError(http.StatusNotFound, entity+" not found")
	}
	return uint(id), nil
}

// readBody returns the raw request body for schema validation
func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return nil, newAPIError(http.StatusBadRequest, "Unable to read request body")
	}
	return body, nil
}

func deleted(c echo.Context, entity string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: entity + " deleted successfully"})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// HTTPErrorHandler renders every error as a JSON ErrorResponse
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := ErrorResponse{Message: "Internal server error"}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch msg := he.Message.(type) {
		case ErrorResponse:
			body = msg
		case string:
			body = ErrorResponse{Message: msg}
		default:
			body = ErrorResponse{Message: http.StatusText(code)}
		}
	} else {
		zap.L().Error("Unhandled error", zap.Error(err), zap.String("path", c.Path()))
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, body)
	}
	if writeErr != nil {
		zap.L().Error("Failed to write error response", zap.Error(writeErr))
	}
}
