package handlers

import (
	"legal_case_app_go/db"
	"legal_case_app_go/schema"
	"legal_case_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListCaseFinancialHandler returns a case's financial records, newest first
func ListCaseFinancialHandler(c echo.Context) error {
	caseID, err := parseID(c, "caseId", "Case")
	if err != nil {
		return err
	}

	records, err := services.ListFinancialByCase(c.Request().Context(), db.DB, caseID)
	if err != nil {
		return apiError(c, err, "Case", "Failed to fetch financial records")
	}
	return c.JSON(http.StatusOK, records)
}

// ListFinancialHandler returns every financial record
func ListFinancialHandler(c echo.Context) error {
	records, err := services.ListAllFinancial(c.Request().Context(), db.DB)
	if err != nil {
		return apiError(c, err, "Financial record", "Failed to fetch financial records")
	}
	return c.JSON(http.StatusOK, records)
}

// PendingFeesHandler returns pending records by due date, undated ones last
func PendingFeesHandler(c echo.Context) error {
	records, err := services.GetPendingFees(c.Request().Context(), db.DB)
	if err != nil {
		return apiError(c, err, "Financial record", "Failed to fetch pending fees")
	}
	return c.JSON(http.StatusOK, records)
}

// GetFinancialHandler returns a single financial record
func GetFinancialHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Financial record")
	if err != nil {
		return err
	}

	record, err := services.GetFinancialRecord(c.Request().Context(), db.DB, id)
	if err != nil {
		return apiError(c, err, "Financial record", "Failed to fetch financial record")
	}
	return c.JSON(http.StatusOK, record)
}

// CreateFinancialHandler records a fee, cost or compensation for a case
func CreateFinancialHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	input, err := schema.Financial.Insert(body)
	if err != nil {
		return apiError(c, err, "Financial record", "Failed to create financial record")
	}

	record, err := services.CreateFinancialRecord(c.Request().Context(), db.DB, input.Model())
	if err != nil {
		return apiError(c, err, "Financial record", "Failed to create financial record")
	}
	return c.JSON(http.StatusCreated, record)
}

// UpdateFinancialHandler applies a partial update to a financial record
func UpdateFinancialHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Financial record")
	if err != nil {
		return err
	}
	body, err := readBody(c)
	if err != nil {
		return err
	}

	patch, err := schema.Financial.Partial(body)
	if err != nil {
		return apiError(c, err, "Financial record", "Failed to update financial record")
	}

	record, err := services.UpdateFinancialRecord(c.Request().Context(), db.DB, id, patch)
	if err != nil {
		return apiError(c, err, "Financial record", "Failed to update financial record")
	}
	return c.JSON(http.StatusOK, record)
}

// DeleteFinancialHandler removes a financial record
func DeleteFinancialHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Financial record")
	if err != nil {
		return err
	}

	if err := services.DeleteFinancialRecord(c.Request().Context(), db.DB, id); err != nil {
		return apiError(c, err, "Financial record", "Failed to delete financial record")
	}
	return deleted(c, "Financial record")
}
