package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered for this clinic")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidRole        = errors.New("invalid role")

	ErrUserNotFound        = errors.New("user not found")
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	ErrNotLinked     = errors.New("user is not linked to a staff member")
	ErrAlreadyLinked = errors.New("user or staff member is already linked")
)
