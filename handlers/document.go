package handlers

import (
	"legal_case_app_go/db"
	"legal_case_app_go/schema"
	"legal_case_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Document handlers track document metadata only. filePath is a reference
// recorded by the client; no file content passes through the API.

// ListCaseDocumentsHandler returns a case's documents, newest first
func ListCaseDocumentsHandler(c echo.Context) error {
	caseID, err := parseID(c, "caseId", "Case")
	if err != nil {
		return err
	}

	documents, err := services.ListDocumentsByCase(c.Request().Context(), db.DB, caseID)
	if err != nil {
		return apiError(c, err, "Case", "Failed to fetch documents")
	}
	return c.JSON(http.StatusOK, documents)
}

// ListDocumentsHandler returns every document, newest first
func ListDocumentsHandler(c echo.Context) error {
	documents, err := services.ListAllDocuments(c.Request().Context(), db.DB)
	if err != nil {
		return apiError(c, err, "Document", "Failed to fetch documents")
	}
	return c.JSON(http.StatusOK, documents)
}

// GetDocumentHandler returns a single document
func GetDocumentHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Document")
	if err != nil {
		return err
	}

	document, err := services.GetDocument(c.Request().Context(), db.DB, id)
	if err != nil {
		return apiError(c, err, "Document", "Failed to fetch document")
	}
	return c.JSON(http.StatusOK, document)
}

// CreateDocumentHandler registers a document against a case
func CreateDocumentHandler(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	input, err := schema.Documents.Insert(body)
	if err != nil {
		return apiError(c, err, "Document", "Failed to create document")
	}

	document, err := services.CreateDocument(c.Request().Context(), db.DB, input.Model())
	if err != nil {
		return apiError(c, err, "Document", "Failed to create document")
	}
	return c.JSON(http.StatusCreated, document)
}

// UpdateDocumentHandler applies a partial update to a document
func UpdateDocumentHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Document")
	if err != nil {
		return err
	}
	body, err := readBody(c)
	if err != nil {
		return err
	}

	patch, err := schema.Documents.Partial(body)
	if err != nil {
		return apiError(c, err, "Document", "Failed to update document")
	}

	document, err := services.UpdateDocument(c.Request().Context(), db.DB, id, patch)
	if err != nil {
		return apiError(c, err, "Document", "Failed to update document")
	}
	return c.JSON(http.StatusOK, document)
}

// DeleteDocumentHandler removes a document
func DeleteDocumentHandler(c echo.Context) error {
	id, err := parseID(c, "id", "Document")
	if err != nil {
		return err
	}

	if err := services.DeleteDocument(c.Request().Context(), db.DB, id); err != nil {
		return apiError(c, err, "Document", "Failed to delete document")
	}
	return deleted(c, "Document")
}
