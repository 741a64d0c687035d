package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff is a clinic professional profile, optionally linked 1:1 to a User login.
type Staff struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID        *uuid.UUID     `gorm:"type:uuid;index" json:"user_id"`
	FirstName     string         `gorm:"size:100;not null" json:"first_name"`
	LastName      string         `gorm:"size:100;not null" json:"last_name"`
	Phone         string         `gorm:"size:50" json:"phone"`
	Email         string         `gorm:"size:255" json:"email"`
	Specialty     string         `gorm:"size:100" json:"specialty"`
	LicenseNumber string         `gorm:"size:100" json:"license_number"`
	HireDate      *time.Time     `json:"hire_date"`
	Active        bool           `gorm:"default:true" json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
