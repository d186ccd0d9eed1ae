package models

import "time"

// Staff is owned by the scheduling side; here it is only joined for names.
type Staff struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

func (Staff) TableName() string {
	return "staff"
}
