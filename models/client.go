package models

import "time"

// Client represents a person or company represented by the practice
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Document  *string   `json:"document"` // CPF/CNPJ or other tax id
	Address   *string   `json:"address"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "clients"
}

// HasEmail reports whether the client can be reached by email
func (c *Client) HasEmail() bool {
	return c.Email != nil && *c.Email != ""
}
