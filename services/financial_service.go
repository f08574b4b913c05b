package services

import (
	"context"
	"legal_case_app_go/models"
	"legal_case_app_go/schema"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListFinancialByCase returns a case's financial records, newest first
func ListFinancialByCase(ctx context.Context, db *gorm.DB, caseID uint) ([]models.FinancialRecord, error) {
	records := []models.FinancialRecord{}
	if err := db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, classify("list financial records", err)
	}
	return records, nil
}

// ListAllFinancial returns every financial record, newest first
func ListAllFinancial(ctx context.Context, db *gorm.DB) ([]models.FinancialRecord, error) {
	records := []models.FinancialRecord{}
	if err := db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, classify("list financial records", err)
	}
	return records, nil
}

// GetPendingFees returns pending records by due date, undated last
func GetPendingFees(ctx context.Context, db *gorm.DB) ([]models.FinancialRecord, error) {
	records := []models.FinancialRecord{}
	if err := db.WithContext(ctx).
		Where("status = ?", models.FinancialStatusPending).
		Order("due_date IS NULL, due_date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, classify("list pending fees", err)
	}
	return records, nil
}

// SumPendingFees adds up every pending amount exactly. It returns "0" when
// nothing is pending.
func SumPendingFees(ctx context.Context, db *gorm.DB) (string, error) {
	var amounts []decimal.Decimal
	if err := db.WithContext(ctx).
		Model(&models.FinancialRecord{}).
		Where("status = ?", models.FinancialStatusPending).
		Pluck("amount", &amounts).Error; err != nil {
		return "", classify("sum pending fees", err)
	}
	if len(amounts) == 0 {
		return "0", nil
	}
	return decimal.Sum(decimal.Zero, amounts...).StringFixed(2), nil
}

// GetFinancialRecord fetches a financial record by id
func GetFinancialRecord(ctx context.Context, db *gorm.DB, id uint) (*models.FinancialRecord, error) {
	return getRecord[models.FinancialRecord](ctx, db, "financial record", id)
}

// CreateFinancialRecord stores a new financial record for an existing case
func CreateFinancialRecord(ctx context.Context, db *gorm.DB, record *models.FinancialRecord) (*models.FinancialRecord, error) {
	return createRecord(ctx, db, "financial record", record, func(tx *gorm.DB) error {
		return requireCase(tx, record.CaseID)
	})
}

// UpdateFinancialRecord applies a partial update to a financial record
func UpdateFinancialRecord(ctx context.Context, db *gorm.DB, id uint, patch schema.Patch) (*models.FinancialRecord, error) {
	return updateRecord(ctx, db, "financial record", id, patch, func(tx *gorm.DB, _ *models.FinancialRecord, _ map[string]interface{}) error {
		if caseID, ok := patchedID(patch, "CaseID"); ok {
			return requireCase(tx, caseID)
		}
		return nil
	})
}

// DeleteFinancialRecord removes a financial record
func DeleteFinancialRecord(ctx context.Context, db *gorm.DB, id uint) error {
	return deleteRecord[models.FinancialRecord](ctx, db, "financial record", id)
}
