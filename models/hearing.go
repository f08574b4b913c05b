package models

import (
	"slices"
	"time"
)

// Hearing type constants
const (
	HearingTypeConciliation = "conciliation"
	HearingTypeInstruction  = "instruction"
	HearingTypeJudgment     = "judgment"
)

// HearingTypes lists every valid hearing type
var HearingTypes = []string{HearingTypeConciliation, HearingTypeInstruction, HearingTypeJudgment}

// Hearing is a scheduled court event attached to a case
type Hearing struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CaseID    uint      `gorm:"not null;index" json:"caseId"`
	Case      *Case     `gorm:"foreignKey:CaseID;constraint:OnDelete:RESTRICT" json:"-"`
	Title     string    `gorm:"not null" json:"title"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Location  *string   `json:"location"`
	Type      string    `gorm:"not null" json:"type"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// TableName specifies the table name for Hearing model
func (Hearing) TableName() string {
	return "hearings"
}

// IsValidHearingType checks if the type is valid
func IsValidHearingType(hearingType string) bool {
	return slices.Contains(HearingTypes, hearingType)
}
