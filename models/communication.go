package models

import (
	"slices"
	"time"
)

// Communication type constants
const (
	CommunicationTypeEmail   = "email"
	CommunicationTypePhone   = "phone"
	CommunicationTypeMeeting = "meeting"
	CommunicationTypeLetter  = "letter"
)

var CommunicationTypes = []string{CommunicationTypeEmail, CommunicationTypePhone, CommunicationTypeMeeting, CommunicationTypeLetter}

// IsValidCommunicationType checks if the type is valid
func IsValidCommunicationType(communicationType string) bool {
	return slices.Contains(CommunicationTypes, communicationType)
}

// Communication logs an interaction with a client about a case
type Communication struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CaseID   uint      `gorm:"not null;index" json:"caseId"`
	Case     *Case     `gorm:"foreignKey:CaseID;constraint:OnDelete:RESTRICT" json:"-"`
	ClientID uint      `gorm:"not null;index" json:"clientId"`
	Client   *Client   `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"-"`
	Type     string    `gorm:"not null" json:"type"`
	Subject  *string   `json:"subject"`
	Content  *string   `gorm:"type:text" json:"content"`
	Date     time.Time `gorm:"not null;autoCreateTime;index" json:"date"`
}

// TableName specifies the table name for Communication model
func (Communication) TableName() string {
	return "communications"
}

// IsEmail checks if the communication was an email
func (c *Communication) IsEmail() bool {
	return c.Type == CommunicationTypeEmail
}
