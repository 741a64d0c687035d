package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id"`
	DentistID       uuid.UUID `json:"dentist_id"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
}

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	PatientID       uuid.UUID `json:"patient_id"`
	PatientName     string    `json:"patient_name"`
	DentistID       uuid.UUID `json:"dentist_id"`
	DentistName     string    `json:"dentist_name"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
}
