package dto

import "github.com/google/uuid"

// CreateStaffRequest optionally provisions a login for the new profile when
// CreateUser is set; the profile and the login are then created and linked as
// one unit.
type CreateStaffRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Specialty     string `json:"specialty"`
	LicenseNumber string `json:"license_number"`
	HireDate      string `json:"hire_date"` // YYYY-MM-DD
	Active        *bool  `json:"active"`

	CreateUser   bool   `json:"create_user"`
	UserEmail    string `json:"user_email"`
	UserPassword string `json:"user_password"`
	UserRole     string `json:"user_role"`
}

type UpdateStaffRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Specialty     string `json:"specialty"`
	LicenseNumber string `json:"license_number"`
	HireDate      string `json:"hire_date"`
	Active        *bool  `json:"active"`
}

type StaffResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        *uuid.UUID `json:"user_id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	FullName      string     `json:"full_name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	Specialty     string     `json:"specialty"`
	LicenseNumber string     `json:"license_number"`
	HireDate      string     `json:"hire_date"`
	Active        bool       `json:"active"`
}
