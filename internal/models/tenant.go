package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a clinic. Every tenant-scoped row carries its id as a foreign key.
type Tenant struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	ContactEmail string    `gorm:"size:255" json:"contact_email"`
	Phone        string    `gorm:"size:50" json:"phone"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
