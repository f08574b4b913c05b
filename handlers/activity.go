package handlers

import (
	"legal_case_app_go/db"
	"legal_case_app_go/schema"
	"legal_case_app_go/services"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ListCaseActivitiesHandler returns a case's activities, undated ones last
func ListCaseActivitiesHandler(c echo.Context) error {
	caseID, err := parseID(c, "caseId", "Case")
	if err != nil {
		return err
	}

	activities, err := services.ListActivitiesByCase(c.Request().Context(), db.DB, caseID)
	if err != nil {
		return apiError(c, err, "Case", "Failed to fetch activities")
	}
	return c.JSON(http.StatusOK, activities)
}

// UpcomingDeadlinesHandler returns open deadlines due in the next 30 days.
// ?limit defaults to 10; anything that is not a positive integer falls back to it.
func UpcomingDeadlinesHandler(c echo.Context) error {
	limit := services.DefaultDeadlineLimit
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 {
			limit = l
		}
	}

	deadlines, err := services.GetUpcomingDeadlines(c.Request().Context(), db.DB, limit)
	if err != nil {
		return apiError(c, err, "Activity", "Failed to fetch upcoming deadlines")
	}
	return c.JSON(http.StatusOK, deadlines)
}

// GetActivityHandler returns a single activity
func GetActivityHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Activity")
	if err != nil {
		return err
	}

	activity, err := services.GetActivity(c.Request().Context(), db.DB, id)
	if err != nil {
		return apiError(c, err, "Activity", "Failed to fetch activity")
	}
	return c.JSON(http.StatusOK, activity)
}

// CreateActivityHandler validates the body and adds an activity to a case
func CreateActivityHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	input, err := schema.Activities.Insert(body)
	if err != nil {
		return apiError(c, err, "Activity", "Failed to create activity")
	}

	activity, err := services.CreateActivity(c.Request().Context(), db.DB, input.Model())
	if err != nil {
		return apiError(c, err, "Activity", "Failed to create activity")
	}
	return c.JSON(http.StatusCreated, activity)
}

// UpdateActivityHandler applies a partial update
func UpdateActivityHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Activity")
	if err != nil {
		return err
	}
	body, err := readBody(c)
	if err != nil {
		return err
	}

	patch, err := schema.Activities.Partial(body)
	if err != nil {
		return apiError(c, err, "Activity", "Failed to update activity")
	}

	activity, err := services.UpdateActivity(c.Request().Context(), db.DB, id, patch)
	if err != nil {
		return apiError(c, err, "Activity", "Failed to update activity")
	}
	return c.JSON(http.StatusOK, activity)
}

// DeleteActivityHandler removes an activity
func DeleteActivityHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Activity")
	if err != nil {
		return err
	}

	if err := services.DeleteActivity(c.Request().Context(), db.DB, id); err != nil {
		return apiError(c, err, "Activity", "Failed to delete activity")
	}
	return deleted(c, "Activity")
}
