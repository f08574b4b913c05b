package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Financial record type constants
const (
	FinancialTypeFee          = "fee"
	FinancialTypeCost         = "cost"
	FinancialTypeCompensation = "compensation"
)

// Financial record status constants
const (
	FinancialStatusPending = "pending"
	FinancialStatusPaid    = "paid"
	FinancialStatusOverdue = "overdue"
)

var (
	FinancialTypes    = []string{FinancialTypeFee, FinancialTypeCost, FinancialTypeCompensation}
	FinancialStatuses = []string{FinancialStatusPending, FinancialStatusPaid, FinancialStatusOverdue}
)

// FinancialRecord is a fee, cost or compensation entry attached to a case
type FinancialRecord struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CaseID      uint            `gorm:"not null;index" json:"caseId"`
	Case        *Case           `gorm:"foreignKey:CaseID;constraint:OnDelete:RESTRICT" json:"-"`
	Type        string          `gorm:"not null" json:"type"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:text;not null" json:"amount"`
	Status      string          `gorm:"not null;default:pending;index" json:"status"`
	DueDate     *time.Time      `json:"dueDate"`
	PaidDate    *time.Time      `json:"paidDate"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
}

// TableName specifies the table name for FinancialRecord model
func (FinancialRecord) TableName() string {
	return "financial"
}

// IsPending checks if the record is awaiting payment
func (f *FinancialRecord) IsPending() bool {
	return f.Status == FinancialStatusPending
}

// IsValidFinancialStatus checks if the status is valid
func IsValidFinancialStatus(status string) bool {
	return slices.Contains(FinancialStatuses, status)
}

func IsValidFinancialType(financialType string) bool {
	return slices.Contains(FinancialTypes, financialType)
}
