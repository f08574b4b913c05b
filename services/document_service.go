package services

import (
	"context"
	"legal_case_app_go/models"
	"legal_case_app_go/schema"

	"gorm.io/gorm"
)

// ListDocumentsByCase returns a case's documents, newest upload first
func ListDocumentsByCase(ctx context.Context, db *gorm.DB, caseID uint) ([]models.Document, error) {
	documents := []models.Document{}
	if err := db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("uploaded_at DESC, id DESC").
		Find(&documents).Error; err != nil {
		return nil, classify("list documents", err)
	}
	return documents, nil
}

// ListAllDocuments returns every document, newest upload first
func ListAllDocuments(ctx context.Context, db *gorm.DB) ([]models.Document, error) {
	documents := []models.Document{}
	if err := db.WithContext(ctx).Order("uploaded_at DESC, id DESC").Find(&documents).Error; err != nil {
		return nil, classify("list documents", err)
	}
	return documents, nil
}

// GetDocument fetches a document by id
func GetDocument(ctx context.Context, db *gorm.DB, id uint) (*models.Document, error) {
	return getRecord[models.Document](ctx, db, "document", id)
}

// CreateDocument registers a document against an existing case
func CreateDocument(ctx context.Context, db *gorm.DB, document *models.Document) (*models.Document, error) {
	return createRecord(ctx, db, "document", document, func(tx *gorm.DB) error {
		return requireCase(tx, document.CaseID)
	})
}

// UpdateDocument applies a partial update to a document
func UpdateDocument(ctx context.Context, db *gorm.DB, id uint, patch schema.Patch) (*models.Document, error) {
	return updateRecord(ctx, db, "document", id, patch, func(tx *gorm.DB, _ *models.Document, _ map[string]interface{}) error {
		if caseID, ok := patchedID(patch, "CaseID"); ok {
			return requireCase(tx, caseID)
		}
		return nil
	})
}

// DeleteDocument removes a document record
func DeleteDocument(ctx context.Context, db *gorm.DB, id uint) error {
	return deleteRecord[models.Document](ctx, db, "document", id)
}
