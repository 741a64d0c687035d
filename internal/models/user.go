package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of login roles. Only RoleAdmin may manage users.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleDentist   Role = "DENTIST"
	RoleAssistant Role = "ASSISTANT"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDentist, RoleAssistant:
		return true
	}
	return false
}

// User is a login identity. Email is unique per tenant, not globally.
// StaffID, when set, must be mirrored by Staff.UserID on the linked row.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_users_tenant_email" json:"tenant_id"`
	StaffID   *uuid.UUID `gorm:"type:uuid;index" json:"staff_id"`
	Email     string     `gorm:"size:255;not null;uniqueIndex:idx_users_tenant_email" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	FirstName string     `gorm:"size:100" json:"first_name"`
	LastName  string     `gorm:"size:100" json:"last_name"`
	Role      Role       `gorm:"size:20;not null" json:"role"`
	Active    bool       `gorm:"default:true" json:"active"`
	CreatedAt time.Time  `json:"created_at"`
}
