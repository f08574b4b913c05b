package handlers

import (
	"legal_case_app_go/config"
	"legal_case_app_go/middleware"

	"github.com/labstack/echo/v4"
)

// ConfigMiddleware makes the configuration available to handlers as "config"
func ConfigMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	}
}

// RegisterRoutes mounts the JSON API, the health check and the metrics endpoint.
// Mutating API calls go through writeLimiter when it is non-nil; the caller
// owns it and stops it on shutdown.
func RegisterRoutes(e *echo.Echo, writeLimiter *middleware.RateLimiter, metrics *middleware.Metrics) {
	e.GET("/healthz", HealthHandler)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	api := e.Group("/api")
	if writeLimiter != nil {
		api.Use(writeLimiter.Middleware())
	}

	api.GET("/dashboard/stats", DashboardStatsHandler)

	// Clients
	api.GET("/clients", ListClientsHandler)
	api.POST("/clients", CreateClientHandler)
	api.GET("/clients/:id", GetClientHandler)
	api.PUT("/clients/:id", UpdateClientHandler)
	api.DELETE("/clients/:id", DeleteClientHandler)
	api.GET("/clients/:id/cases", ListClientCasesHandler)

	// Cases and their child records
	api.GET("/cases", ListCasesHandler)
	api.POST("/cases", CreateCaseHandler)
	api.GET("/cases/:id", GetCaseHandler)
	api.PUT("/cases/:id", UpdateCaseHandler)
	api.DELETE("/cases/:id", DeleteCaseHandler)
	api.GET("/cases/:caseId/activities", ListCaseActivitiesHandler)
	api.GET("/cases/:caseId/hearings", ListCaseHearingsHandler)
	api.GET("/cases/:caseId/documents", ListCaseDocumentsHandler)
	api.GET("/cases/:caseId/financial", ListCaseFinancialHandler)
	api.GET("/cases/:caseId/communications", ListCaseCommunicationsHandler)

	// Activities
	api.GET("/activities/upcoming", UpcomingDeadlinesHandler)
	api.POST("/activities", CreateActivityHandler)
	api.GET("/activities/:id", GetActivityHandler)
	api.PUT("/activities/:id", UpdateActivityHandler)
	api.DELETE("/activities/:id", DeleteActivityHandler)

	// Hearings
	api.GET("/hearings", ListHearingsHandler)
	api.GET("/hearings/today", TodayHearingsHandler)
	api.POST("/hearings", CreateHearingHandler)
	api.GET("/hearings/:id", GetHearingHandler)
	api.PUT("/hearings/:id", UpdateHearingHandler)
	api.DELETE("/hearings/:id", DeleteHearingHandler)

	// Documents
	api.GET("/documents", ListDocumentsHandler)
	api.POST("/documents", CreateDocumentHandler)
	api.GET("/documents/:id", GetDocumentHandler)
	api.PUT("/documents/:id", UpdateDocumentHandler)
	api.DELETE("/documents/:id", DeleteDocumentHandler)

	// Financial
	api.GET("/financial", ListFinancialHandler)
	api.GET("/financial/pending", PendingFeesHandler)
	api.POST("/financial", CreateFinancialHandler)
	api.GET("/financial/:id", GetFinancialHandler)
	api.PUT("/financial/:id", UpdateFinancialHandler)
	api.DELETE("/financial/:id", DeleteFinancialHandler)

	// Communications
	api.POST("/communications", CreateCommunicationHandler)
	api.GET("/communications/:id", GetCommunicationHandler)
	api.PUT("/communications/:id", UpdateCommunicationHandler)
	api.DELETE("/communications/:id", DeleteCommunicationHandler)
	api.POST("/communications/:id/send", SendCommunicationHandler)

	// Reports
	api.GET("/reports/cases-by-status", CasesByStatusHandler)
	api.GET("/reports/cases/export", ExportCasesHandler)
	api.GET("/reports/deadlines/export", ExportDeadlinesHandler)
}
