package models

import "time"

// Document is a case document; FilePath is nil when nothing was uploaded
type Document struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CaseID     uint      `gorm:"not null;index" json:"caseId"`
	Case       *Case     `gorm:"foreignKey:CaseID;constraint:OnDelete:RESTRICT" json:"-"`
	Name       string    `gorm:"not null" json:"name"`
	Type       string    `gorm:"not null" json:"type"` // free-form label (Petição, Contestação, ...)
	FilePath   *string   `json:"filePath"`
	UploadedAt time.Time `gorm:"not null;autoCreateTime" json:"uploadedAt"`
}

// TableName specifies the table name for Document model
func (Document) TableName() string {
	return "documents"
}

// HasFile reports whether a file is attached to the document
func (d *Document) HasFile() bool {
	return d.FilePath != nil && *d.FilePath != ""
}
