package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Case status constants
const (
	CaseStatusOngoing   = "ongoing"
	CaseStatusCompleted = "completed"
	CaseStatusSuspended = "suspended"
	CaseStatusArchived  = "archived"
)

// CaseStatuses lists every valid case status in display order
var CaseStatuses = []string{
	CaseStatusOngoing,
	CaseStatusCompleted,
	CaseStatusSuspended,
	CaseStatusArchived,
}

// Case represents a legal proceeding identified by its court process number
type Case struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ProcessNumber string `gorm:"not null;uniqueIndex:idx_cases_process_number" json:"processNumber"`
	Court         string `gorm:"not null" json:"court"`

	// Client relationship
	ClientID uint    `gorm:"not null;index" json:"clientId"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"client,omitempty"`

	ActionType  string              `gorm:"not null" json:"actionType"`
	Plaintiff   string              `gorm:"not null" json:"plaintiff"`
	Defendant   string              `gorm:"not null" json:"defendant"`
	CaseValue   decimal.NullDecimal `gorm:"type:text" json:"caseValue"`
	Status      string              `gorm:"not null;default:ongoing;index" json:"status"`
	Description *string             `gorm:"type:text" json:"description"`
	Notes       *string             `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;index" json:"updatedAt"`
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// ClientName returns the joined client's name or empty string
func (c *Case) ClientName() string {
	if c.Client != nil {
		return c.Client.Name
	}
	return ""
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	return slices.Contains(CaseStatuses, status)
}

// CaseWithRelations is a case together with its client and every child record
type CaseWithRelations struct {
	Case
	Activities     []Activity        `json:"activities"`
	Hearings       []Hearing         `json:"hearings"`
	Documents      []Document        `json:"documents"`
	Financial      []FinancialRecord `json:"financial"`
	Communications []Communication   `json:"communications"`
}
