package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	m := NewMetrics("legal_case")

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/clients/:id", func(c echo.Context) error {
		if c.Param("id") == "404" {
			return echo.NewHTTPError(http.StatusNotFound, "Client not found")
		}
		if c.Param("id") == "500" {
			return errors.New("boom")
		}
		return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id")})
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	for _, id := range []string{"1", "2", "404", "500"} {
		req := httptest.NewRequest(http.MethodGet, "/api/clients/"+id, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/clients/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/clients/:id", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/clients/:id", "500")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))

	t.Run("Exposition", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.Contains(body, "legal_case_http_requests_total"))
		assert.True(t, strings.Contains(body, `route="/api/clients/:id"`))
		// The scrape itself is not counted
		assert.False(t, strings.Contains(body, `route="/metrics"`))
	})
}
