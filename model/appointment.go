package model

import (
	"time"

	"gorm.io/gorm"
)

// Appointment represents a scheduled visit of a patient to a doctor
// @Description Appointment information
type Appointment struct {
	gorm.Model
	PatientID       uint      `json:"patient_id" gorm:"not null;index" example:"1"`
	DoctorID        uint      `json:"doctor_id" gorm:"not null;index" example:"2"`
	AppointmentTime time.Time `json:"appointment_time" gorm:"not null;index" example:"2025-03-01T10:30:00+07:00"`
	Description     *string   `json:"description" gorm:"size:200" example:"Follow-up visit"`
	Patient         *Patient  `json:"patient,omitempty"`
	Doctor          *Doctor   `json:"doctor,omitempty"`
}
