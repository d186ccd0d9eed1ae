package models

import "time"

// Appointment is read-only for this API: counted by the delete guards and
// joined by the history and popularity views.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID  uint  `gorm:"index;not null" json:"client_id"`
	ServiceID *uint `gorm:"index" json:"service_id"`
	StaffID   *uint `gorm:"index" json:"staff_id"`

	AppointmentDatetime time.Time `gorm:"not null" json:"appointment_datetime"`

	Status string  `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

// All lists the models owned by the salon schema, in dependency order.
func All() []any {
	return []any{
		&Client{},
		&Service{},
		&Staff{},
		&Appointment{},
	}
}
