package handlers

import (
	"legal_case_app_go/db"
	"legal_case_app_go/schema"
	"legal_case_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListCaseHearingsHandler returns a case's hearings, earliest first
func ListCaseHearingsHandler(c echo.Context) error {
	caseID, err := parseID(c, "caseId", "Case")
	if err != nil {
		return err
	}

	hearings, err := services.ListHearingsByCase(c.Request().Context(), db.DB, caseID)
	if err != nil {
		return apiError(c, err, "Case", "Failed to fetch hearings")
	}
	return c.JSON(http.StatusOK, hearings)
}

// ListHearingsHandler returns every hearing for the calendar
func ListHearingsHandler(c echo.Context) error {
	hearings, err := services.ListAllHearings(c.Request().Context(), db.DB)
	if err != nil {
		return apiError(c, err, "Hearing", "Failed to fetch hearings")
	}
	return c.JSON(http.StatusOK, hearings)
}

// TodayHearingsHandler returns the pending hearings of the current practice day
func TodayHearingsHandler(c echo.Context) error {
	hearings, err := services.GetTodayHearings(c.Request().Context(), db.DB)
	if err != nil {
		return apiError(c, err, "Hearing", "Failed to fetch today's hearings")
	}
	return c.JSON(http.StatusOK, hearings)
}

// GetHearingHandler returns a single hearing
func GetHearingHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Hearing")
	if err != nil {
		return err
	}

	hearing, err := services.GetHearing(c.Request().Context(), db.DB, id)
	if err != nil {
		return apiError(c, err, "Hearing", "Failed to fetch hearing")
	}
	return c.JSON(http.StatusOK, hearing)
}

// CreateHearingHandler schedules a hearing for a case
func CreateHearingHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	input, err := schema.Hearings.Insert(body)
	if err != nil {
		return apiError(c, err, "Hearing", "Failed to create hearing")
	}

	hearing, err := services.CreateHearing(c.Request().Context(), db.DB, input.Model())
	if err != nil {
		return apiError(c, err, "Hearing", "Failed to create hearing")
	}
	return c.JSON(http.StatusCreated, hearing)
}

// UpdateHearingHandler applies a partial update to a hearing
func UpdateHearingHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Hearing")
	if err != nil {
		return err
	}
	body, err := readBody(c)
	if err != nil {
		return err
	}

	patch, err := schema.Hearings.Partial(body)
	if err != nil {
		return apiError(c, err, "Hearing", "Failed to update hearing")
	}

	hearing, err := services.UpdateHearing(c.Request().Context(), db.DB, id, patch)
	if err != nil {
		return apiError(c, err, "Hearing", "Failed to update hearing")
	}
	return c.JSON(http.StatusOK, hearing)
}

// DeleteHearingHandler removes a hearing
func DeleteHearingHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Hearing")
	if err != nil {
		return err
	}

	if err := services.DeleteHearing(c.Request().Context(), db.DB, id); err != nil {
		return apiError(c, err, "Hearing", "Failed to delete hearing")
	}
	return deleted(c, "Hearing")
}
