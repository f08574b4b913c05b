package services

import (
	"context"
	"errors"
	"legal_case_app_go/models"
	"legal_case_app_go/schema"

	"gorm.io/gorm"
)

// ListCommunicationsByCase returns a case's communications, most recent first
func ListCommunicationsByCase(ctx context.Context, db *gorm.DB, caseID uint) ([]models.Communication, error) {
	communications := []models.Communication{}
	if err := db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("date DESC, id DESC").
		Find(&communications).Error; err != nil {
		return nil, classify("list communications", err)
	}
	return communications, nil
}

// GetCommunication fetches a communication by id
func GetCommunication(ctx context.Context, db *gorm.DB, id uint) (*models.Communication, error) {
	return getRecord[models.Communication](ctx, db, "communication", id)
}

// getCommunicationForDelivery loads a communication with its case and client
func getCommunicationForDelivery(ctx context.Context, db *gorm.DB, id uint) (*models.Communication, error) {
	var comm models.Communication
	err := db.WithContext(ctx).Preload("Case").Preload("Client").First(&comm, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("communication")
		}
		return nil, classify("get communication", err)
	}
	return &comm, nil
}

// CreateCommunication logs a communication; both the case and the client must exist
func CreateCommunication(ctx context.Context, db *gorm.DB, comm *models.Communication) (*models.Communication, error) {
	return createRecord(ctx, db, "communication", comm, func(tx *gorm.DB) error {
		if err := requireCase(tx, comm.CaseID); err != nil {
			return err
		}
		return requireClient(tx, comm.ClientID)
	})
}

// UpdateCommunication applies a partial update to a communication
func UpdateCommunication(ctx context.Context, db *gorm.DB, id uint, patch schema.Patch) (*models.Communication, error) {
	return updateRecord(ctx, db, "communication", id, patch, func(tx *gorm.DB, _ *models.Communication, _ map[string]interface{}) error {
		if caseID, ok := patchedID(patch, "CaseID"); ok {
			if err := requireCase(tx, caseID); err != nil {
				return err
			}
		}
		if clientID, ok := patchedID(patch, "ClientID"); ok {
			return requireClient(tx, clientID)
		}
		return nil
	})
}

// DeleteCommunication removes a communication
func DeleteCommunication(ctx context.Context, db *gorm.DB, id uint) error {
	return deleteRecord[models.Communication](ctx, db, "communication", id)
}
