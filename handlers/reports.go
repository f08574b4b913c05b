package handlers

import (
	"bytes"
	"context"
	"fmt"
	"legal_case_app_go/db"
	"legal_case_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CasesByStatusHandler returns the number of cases in each status
func CasesByStatusHandler(c echo.Context) error {
	counts, err := services.CountCasesByStatus(c.Request().Context(), db.DB)
	if err != nil {
		return apiError(c, err, "Report", "Failed to fetch case report")
	}
	return c.JSON(http.StatusOK, counts)
}

// ExportCasesHandler downloads every case as an xlsx workbook
func ExportCasesHandler(c echo.Context) error {
	return exportWorkbook(c, "cases", services.BuildCasesWorkbook)
}

// ExportDeadlinesHandler downloads the open deadlines of the next 30 days
func ExportDeadlinesHandler(c echo.Context) error {
	return exportWorkbook(c, "deadlines", services.BuildDeadlinesWorkbook)
}

func exportWorkbook(c echo.Context, report string, build func(context.Context, *gorm.DB) (*bytes.Buffer, error)) error {
	buf, err := build(c.Request().Context(), db.DB)
	if err != nil {
		return apiError(c, err, "Report", "Failed to export "+report)
	}

	filename := fmt.Sprintf("%s_%s.xlsx", report, services.Now().In(services.Location).Format("20060102_150405"))
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
