package dto

import "time"

// ClientAppointmentDTO is one row of a client's history. Staff and service
// come from left joins and are nil when the reference is gone.
type ClientAppointmentDTO struct {
	ID                  uint      `json:"id"`
	AppointmentDatetime time.Time `json:"appointment_datetime"`
	Status              string    `json:"status"`
	Notes               *string   `json:"notes"`
	StaffName           *string   `json:"staff_name"`
	ServiceName         *string   `json:"service_name"`
	Price               *float64  `json:"price"`
}
