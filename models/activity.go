package models

import (
	"slices"
	"time"
)

// Activity type constants
const (
	ActivityTypeDeadline = "deadline"
	ActivityTypeHearing  = "hearing"
	ActivityTypePetition = "petition"
	ActivityTypeDocument = "document"
)

// Activity priority constants
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ActivityTypes lists every valid activity type
var ActivityTypes = []string{ActivityTypeDeadline, ActivityTypeHearing, ActivityTypePetition, ActivityTypeDocument}

// Priorities lists every valid priority from lowest to highest
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Activity is a task or deadline tracked against a case
type Activity struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CaseID      uint       `gorm:"not null;index" json:"caseId"`
	Case        *Case      `gorm:"foreignKey:CaseID;constraint:OnDelete:RESTRICT" json:"-"`
	Type        string     `gorm:"not null;index:idx_activities_deadline" json:"type"`
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	DueDate     *time.Time `gorm:"index:idx_activities_deadline" json:"dueDate"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	Priority    string     `gorm:"not null;default:medium" json:"priority"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
}

// TableName specifies the table name for Activity model
func (Activity) TableName() string {
	return "activities"
}

// IsDeadline checks if the activity is a procedural deadline
func (a *Activity) IsDeadline() bool {
	return a.Type == ActivityTypeDeadline
}

// IsValidActivityType checks if the type is valid
func IsValidActivityType(activityType string) bool {
	return slices.Contains(ActivityTypes, activityType)
}

// IsValidPriority checks if the priority is valid
func IsValidPriority(priority string) bool {
	return slices.Contains(Priorities, priority)
}
