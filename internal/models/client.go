package models

import "time"

// Client is a salon customer. Email is optional but unique when present.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Email *string `gorm:"size:100;uniqueIndex:clients_email_key" json:"email"`
	Phone string  `gorm:"size:20;not null" json:"phone"`
	Notes *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
