package services

import (
	"context"
	"legal_case_app_go/models"
	"legal_case_app_go/schema"
	"time"

	"gorm.io/gorm"
)

// ListActivitiesByCase returns a case's activities by due date, undated last
func ListActivitiesByCase(ctx context.Context, db *gorm.DB, caseID uint) ([]models.Activity, error) {
	activities := []models.Activity{}
	if err := db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("due_date IS NULL, due_date ASC, id ASC").
		Find(&activities).Error; err != nil {
		return nil, classify("list activities", err)
	}
	return activities, nil
}

// GetActivity fetches an activity by id
func GetActivity(ctx context.Context, db *gorm.DB, id uint) (*models.Activity, error) {
	return getRecord[models.Activity](ctx, db, "activity", id)
}

// CreateActivity stores a new activity for an existing case
func CreateActivity(ctx context.Context, db *gorm.DB, activity *models.Activity) (*models.Activity, error) {
	return createRecord(ctx, db, "activity", activity, func(tx *gorm.DB) error {
		return requireCase(tx, activity.CaseID)
	})
}

// UpdateActivity applies a partial update to an activity
func UpdateActivity(ctx context.Context, db *gorm.DB, id uint, patch schema.Patch) (*models.Activity, error) {
	return updateRecord(ctx, db, "activity", id, patch, func(tx *gorm.DB, _ *models.Activity, _ map[string]interface{}) error {
		if caseID, ok := patchedID(patch, "CaseID"); ok {
			return requireCase(tx, caseID)
		}
		return nil
	})
}

// DeleteActivity removes an activity
func DeleteActivity(ctx context.Context, db *gorm.DB, id uint) error {
	return deleteRecord[models.Activity](ctx, db, "activity", id)
}

// openDeadlines selects incomplete deadline activities due within [from, from+window]
func openDeadlines(db *gorm.DB, from time.Time, window time.Duration) *gorm.DB {
	from = from.UTC()
	return db.Model(&models.Activity{}).
		Where("activities.type = ? AND activities.completed = ?", models.ActivityTypeDeadline, false).
		Where("activities.due_date >= ? AND activities.due_date <= ?", from, from.Add(window))
}

// GetUpcomingDeadlines returns open deadlines due in the next 30 days, soonest
// first. A non-positive limit falls back to DefaultDeadlineLimit.
func GetUpcomingDeadlines(ctx context.Context, db *gorm.DB, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = DefaultDeadlineLimit
	}

	activities := []models.Activity{}
	if err := openDeadlines(db.WithContext(ctx), Now(), DeadlineListWindow).
		Order("activities.due_date ASC, activities.id ASC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, classify("list upcoming deadlines", err)
	}
	return activities, nil
}

// CountUpcomingDeadlines counts open deadlines due within window from now
func CountUpcomingDeadlines(ctx context.Context, db *gorm.DB, window time.Duration) (int64, error) {
	var count int64
	if err := openDeadlines(db.WithContext(ctx), Now(), window).Count(&count).Error; err != nil {
		return 0, classify("count upcoming deadlines", err)
	}
	return count, nil
}
