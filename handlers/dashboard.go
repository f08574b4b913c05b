package handlers

import (
	"context"
	"legal_case_app_go/db"
	"legal_case_app_go/services"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DashboardStatsHandler returns the four dashboard counters
func DashboardStatsHandler(c echo.Context) error {
	stats, err := services.GetDashboardStats(c.Request().Context(), db.DB)
	if err != nil {
		return apiError(c, err, "Dashboard", "Failed to fetch dashboard stats")
	}
	return c.JSON(http.StatusOK, stats)
}

// HealthHandler reports whether the store answers
func HealthHandler(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		zap.L().Error("Health check failed", zap.Error(err))
		return newAPIError(http.StatusServiceUnavailable, "Database unavailable")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
