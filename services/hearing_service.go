package services

import (
	"context"
	"legal_case_app_go/models"
	"legal_case_app_go/schema"

	"gorm.io/gorm"
)

// ListHearingsByCase returns a case's hearings in chronological order
func ListHearingsByCase(ctx context.Context, db *gorm.DB, caseID uint) ([]models.Hearing, error) {
	hearings := []models.Hearing{}
	if err := db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("date ASC, id ASC").
		Find(&hearings).Error; err != nil {
		return nil, classify("list hearings", err)
	}
	return hearings, nil
}

// ListAllHearings returns every hearing in chronological order
func ListAllHearings(ctx context.Context, db *gorm.DB) ([]models.Hearing, error) {
	hearings := []models.Hearing{}
	if err := db.WithContext(ctx).Order("date ASC, id ASC").Find(&hearings).Error; err != nil {
		return nil, classify("list hearings", err)
	}
	return hearings, nil
}

// todayHearings selects the pending hearings scheduled for today in the practice time zone
func todayHearings(db *gorm.DB) *gorm.DB {
	start, end := todayRange()
	return db.Model(&models.Hearing{}).
		Where("date >= ? AND date < ?", start, end).
		Where("completed = ?", false)
}

// GetTodayHearings returns today's pending hearings in chronological order
func GetTodayHearings(ctx context.Context, db *gorm.DB) ([]models.Hearing, error) {
	hearings := []models.Hearing{}
	if err := todayHearings(db.WithContext(ctx)).Order("date ASC, id ASC").Find(&hearings).Error; err != nil {
		return nil, classify("list today's hearings", err)
	}
	return hearings, nil
}

// GetHearing fetches a hearing by id
func GetHearing(ctx context.Context, db *gorm.DB, id uint) (*models.Hearing, error) {
	return getRecord[models.Hearing](ctx, db, "hearing", id)
}

// CreateHearing stores a new hearing for an existing case
func CreateHearing(ctx context.Context, db *gorm.DB, hearing *models.Hearing) (*models.Hearing, error) {
	return createRecord(ctx, db, "hearing", hearing, func(tx *gorm.DB) error {
		return requireCase(tx, hearing.CaseID)
	})
}

// UpdateHearing applies a partial update to a hearing
func UpdateHearing(ctx context.Context, db *gorm.DB, id uint, patch schema.Patch) (*models.Hearing, error) {
	return updateRecord(ctx, db, "hearing", id, patch, func(tx *gorm.DB, _ *models.Hearing, _ map[string]interface{}) error {
		if caseID, ok := patchedID(patch, "CaseID"); ok {
			return requireCase(tx, caseID)
		}
		return nil
	})
}

// DeleteHearing removes a hearing
func DeleteHearing(ctx context.Context, db *gorm.DB, id uint) error {
	return deleteRecord[models.Hearing](ctx, db, "hearing", id)
}
