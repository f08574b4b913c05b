package handlers

import (
	"legal_case_app_go/db"
	"legal_case_app_go/schema"
	"legal_case_app_go/services"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ListCasesHandler returns every case joined with its client, or the
// cases matching ?search= when it is non-empty
func ListCasesHandler(c echo.Context) error {
	ctx := c.Request().Context()

	if search := strings.TrimSpace(c.QueryParam("search")); search != "" {
		cases, err := services.SearchCases(ctx, db.DB, search)
		if err != nil {
			return apiError(c, err, "Case", "Failed to fetch cases")
		}
		return c.JSON(http.StatusOK, cases)
	}

	cases, err := services.ListCasesWithClient(ctx, db.DB)
	if err != nil {
		return apiError(c, err, "Case", "Failed to fetch cases")
	}
	return c.JSON(http.StatusOK, cases)
}

// GetCaseHandler returns a case with its client and every child record
func GetCaseHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Case")
	if err != nil {
		return err
	}

	result, err := services.GetCaseWithRelations(c.Request().Context(), db.DB, id)
	if err != nil {
		return apiError(c, err, "Case", "Failed to fetch case")
	}
	return c.JSON(http.StatusOK, result)
}

// CreateCaseHandler validates the body and opens a case for an existing client
func CreateCaseHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	input, err := schema.Cases.Insert(body)
	if err != nil {
		return apiError(c, err, "Case", "Failed to create case")
	}

	created, err := services.CreateCase(c.Request().Context(), db.DB, input.Model())
	if err != nil {
		return apiError(c, err, "Case", "Failed to create case")
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCaseHandler applies a partial update and refreshes updatedAt
func UpdateCaseHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Case")
	if err != nil {
		return err
	}
	body, err := readBody(c)
	if err != nil {
		return err
	}

	patch, err := schema.Cases.Partial(body)
	if err != nil {
		return apiError(c, err, "Case", "Failed to update case")
	}

	updated, err := services.UpdateCase(c.Request().Context(), db.DB, id, patch)
	if err != nil {
		return apiError(c, err, "Case", "Failed to update case")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCaseHandler removes a case that has no child records
func DeleteCaseHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Case")
	if err != nil {
		return err
	}

	if err := services.DeleteCase(c.Request().Context(), db.DB, id); err != nil {
		return apiError(c, err, "Case", "Failed to delete case")
	}
	return deleted(c, "Case")
}
