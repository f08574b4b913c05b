package handlers

import (
	"legal_case_app_go/db"
	"legal_case_app_go/schema"
	"legal_case_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListClientsHandler returns every client ordered by name
func ListClientsHandler(c echo.Context) error {
	clients, err := services.ListClients(c.Request().Context(), db.DB)
	if err != nil {
		return apiError(c, err, "Client", "Failed to fetch clients")
	}
	return c.JSON(http.StatusOK, clients)
}

// GetClientHandler returns a single client
func GetClientHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Client")
	if err != nil {
		return err
	}

	client, err := services.GetClient(c.Request().Context(), db.DB, id)
	if err != nil {
		return apiError(c, err, "Client", "Failed to fetch client")
	}
	return c.JSON(http.StatusOK, client)
}

// ListClientCasesHandler returns the cases owned by a client
func ListClientCasesHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Client")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := services.GetClient(ctx, db.DB, id); err != nil {
		return apiError(c, err, "Client", "Failed to fetch cases")
	}

	cases, err := services.ListCasesByClient(ctx, db.DB, id)
	if err != nil {
		return apiError(c, err, "Client", "Failed to fetch cases")
	}
	return c.JSON(http.StatusOK, cases)
}

// CreateClientHandler validates the body and inserts a client
func CreateClientHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	input, err := schema.Clients.Insert(body)
	if err != nil {
		return apiError(c, err, "Client", "Failed to create client")
	}

	client, err := services.CreateClient(c.Request().Context(), db.DB, input.Model())
	if err != nil {
		return apiError(c, err, "Client", "Failed to create client")
	}
	return c.JSON(http.StatusCreated, client)
}

// UpdateClientHandler applies a partial update
func UpdateClientHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Client")
	if err != nil {
		return err
	}
	body, err := readBody(c)
	if err != nil {
		return err
	}

	patch, err := schema.Clients.Partial(body)
	if err != nil {
		return apiError(c, err, "Client", "Failed to update client")
	}

	client, err := services.UpdateClient(c.Request().Context(), db.DB, id, patch)
	if err != nil {
		return apiError(c, err, "Client", "Failed to update client")
	}
	return c.JSON(http.StatusOK, client)
}

// DeleteClientHandler removes a client without cases or communications
func DeleteClientHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Client")
	if err != nil {
		return err
	}

	if err := services.DeleteClient(c.Request().Context(), db.DB, id); err != nil {
		return apiError(c, err, "Client", "Failed to delete client")
	}
	return deleted(c, "Client")
}
