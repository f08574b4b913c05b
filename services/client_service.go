package services

import (
	"context"
	"legal_case_app_go/models"
	"legal_case_app_go/schema"

	"gorm.io/gorm"
)

// ListClients returns every client ordered by name
func ListClients(ctx context.Context, db *gorm.DB) ([]models.Client, error) {
	clients := []models.Client{}
	if err := db.WithContext(ctx).Order("name ASC, id ASC").Find(&clients).Error; err != nil {
		return nil, classify("list clients", err)
	}
	return clients, nil
}

// GetClient fetches a client by id
func GetClient(ctx context.Context, db *gorm.DB, id uint) (*models.Client, error) {
	return getRecord[models.Client](ctx, db, "client", id)
}

// CreateClient stores a new client
func CreateClient(ctx context.Context, db *gorm.DB, client *models.Client) (*models.Client, error) {
	return createRecord(ctx, db, "client", client, nil)
}

// UpdateClient applies a partial update to a client
func UpdateClient(ctx context.Context, db *gorm.DB, id uint, patch schema.Patch) (*models.Client, error) {
	return updateRecord[models.Client](ctx, db, "client", id, patch, nil)
}

// DeleteClient removes a client that owns no cases or communications
func DeleteClient(ctx context.Context, db *gorm.DB, id uint) error {
	return deleteRecord[models.Client](ctx, db, "client", id,
		dependent{model: &models.Case{}, column: "client_id", label: "cases"},
		dependent{model: &models.Communication{}, column: "client_id", label: "communications"},
	)
}
