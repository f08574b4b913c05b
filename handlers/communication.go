package handlers

import (
	"legal_case_app_go/config"
	"legal_case_app_go/db"
	"legal_case_app_go/schema"
	"legal_case_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListCaseCommunicationsHandler returns a case's communications, most recent first
func ListCaseCommunicationsHandler(c echo.Context) error {
	caseID, err := parseID(c, "caseId", "Case")
	if err != nil {
		return err
	}

	comms, err := services.ListCommunicationsByCase(c.Request().Context(), db.DB, caseID)
	if err != nil {
		return apiError(c, err, "Case", "Failed to fetch communications")
	}
	return c.JSON(http.StatusOK, comms)
}

// GetCommunicationHandler returns a single communication
func GetCommunicationHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Communication")
	if err != nil {
		return err
	}

	comm, err := services.GetCommunication(c.Request().Context(), db.DB, id)
	if err != nil {
		return apiError(c, err, "Communication", "Failed to fetch communication")
	}
	return c.JSON(http.StatusOK, comm)
}

// CreateCommunicationHandler logs a new communication with a client
func CreateCommunicationHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	input, err := schema.Communications.Insert(body)
	if err != nil {
		return apiError(c, err, "Communication", "Failed to create communication")
	}

	comm, err := services.CreateCommunication(c.Request().Context(), db.DB, input.Model())
	if err != nil {
		return apiError(c, err, "Communication", "Failed to create communication")
	}
	return c.JSON(http.StatusCreated, comm)
}

// UpdateCommunicationHandler applies a partial update to a communication
func UpdateCommunicationHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Communication")
	if err != nil {
		return err
	}
	body, err := readBody(c)
	if err != nil {
		return err
	}

	patch, err := schema.Communications.Partial(body)
	if err != nil {
		return apiError(c, err, "Communication", "Failed to update communication")
	}

	comm, err := services.UpdateCommunication(c.Request().Context(), db.DB, id, patch)
	if err != nil {
		return apiError(c, err, "Communication", "Failed to update communication")
	}
	return c.JSON(http.StatusOK, comm)
}

// DeleteCommunicationHandler removes a communication
func DeleteCommunicationHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Communication")
	if err != nil {
		return err
	}

	if err := services.DeleteCommunication(c.Request().Context(), db.DB, id); err != nil {
		return apiError(c, err, "Communication", "Failed to delete communication")
	}
	return deleted(c, "Communication")
}

// SendCommunicationHandler emails an email-type communication to its client.
// In email test mode the message is only logged.
func SendCommunicationHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Communication")
	if err != nil {
		return err
	}

	cfg, ok := c.Get("config").(*config.Config)
	if !ok {
		return newAPIError(http.StatusInternalServerError, "Failed to send communication")
	}

	comm, err := services.SendCommunicationEmail(c.Request().Context(), db.DB, cfg, id)
	if err != nil {
		return apiError(c, err, "Communication", "Failed to send communication")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Communication sent to " + *comm.Client.Email})
}
