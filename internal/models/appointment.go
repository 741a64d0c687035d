package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentScheduled = "SCHEDULED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

// Appointment books a patient with a dentist (a User with the DENTIST role).
type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID        uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	PatientID       uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DentistID       uuid.UUID `gorm:"type:uuid;not null;index" json:"dentist_id"`
	StartTime       time.Time `gorm:"not null;index" json:"start_time"`
	DurationMinutes int       `gorm:"not null;default:30" json:"duration_minutes"`
	Status          string    `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
