package services

import (
	"fmt"
	"time"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

func (s *AppointmentService) List(tenantID uuid.UUID) ([]dto.AppointmentResponse, error) {
	var appts []models.Appointment
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).Order("start_time").Find(&appts).Error; err != nil {
		return nil, err
	}
	return s.toResponses(appts), nil
}

func (s *AppointmentService) ListRange(tenantID uuid.UUID, from, to time.Time) ([]dto.AppointmentResponse, error) {
	var appts []models.Appointment
	err := s.db.Scopes(tenant.ForTenant(tenantID)).
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return s.toResponses(appts), nil
}

func (s *AppointmentService) Get(id, tenantID uuid.UUID) (*dto.AppointmentResponse, error) {
	var appt models.Appointment
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&appt, "id = ?", id).Error; err != nil {
		return nil, ErrAppointmentNotFound
	}
	resp := s.toResponse(&appt)
	return &resp, nil
}

func (s *AppointmentService) Create(tenantID uuid.UUID, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := s.validateRefs(tenantID, req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.AppointmentScheduled
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = 30
	}

	appt := models.Appointment{
		ID:              uuid.New(),
		TenantID:        tenantID,
		PatientID:       req.PatientID,
		DentistID:       req.DentistID,
		StartTime:       req.StartTime,
		DurationMinutes: duration,
		Status:          status,
		Notes:           req.Notes,
	}
	if err := s.db.Create(&appt).Error; err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	resp := s.toResponse(&appt)
	return &resp, nil
}

func (s *AppointmentService) Update(id, tenantID uuid.UUID, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	var appt models.Appointment
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&appt, "id = ?", id).Error; err != nil {
		return nil, ErrAppointmentNotFound
	}

	if err := s.validateRefs(tenantID, req); err != nil {
		return nil, err
	}
	if req.Status != "" && !validStatus(req.Status) {
		return nil, fmt.Errorf("invalid status %q", req.Status)
	}

	appt.PatientID = req.PatientID
	appt.DentistID = req.DentistID
	appt.StartTime = req.StartTime
	if req.DurationMinutes > 0 {
		appt.DurationMinutes = req.DurationMinutes
	}
	if req.Status != "" {
		appt.Status = req.Status
	}
	appt.Notes = req.Notes
	if err := s.db.Save(&appt).Error; err != nil {
		return nil, err
	}

	resp := s.toResponse(&appt)
	return &resp, nil
}

func (s *AppointmentService) Delete(id, tenantID uuid.UUID) error {
	result := s.db.Scopes(tenant.ForTenant(tenantID)).Where("id = ?", id).Delete(&models.Appointment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// validateRefs checks that the patient and the dentist login both exist in
// the caller's tenant before anything is written.
func (s *AppointmentService) validateRefs(tenantID uuid.UUID, req *dto.AppointmentRequest) error {
	var patient models.Patient
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&patient, "id = ?", req.PatientID).Error; err != nil {
		return ErrPatientNotFound
	}
	var dentist models.User
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&dentist, "id = ?", req.DentistID).Error; err != nil {
		return ErrUserNotFound
	}
	return nil
}

func validStatus(status string) bool {
	switch status {
	case models.AppointmentScheduled, models.AppointmentCompleted, models.AppointmentCancelled:
		return true
	}
	return false
}

func (s *AppointmentService) toResponses(appts []models.Appointment) []dto.AppointmentResponse {
	out := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, s.toResponse(&appts[i]))
	}
	return out
}

func (s *AppointmentService) toResponse(appt *models.Appointment) dto.AppointmentResponse {
	resp := dto.AppointmentResponse{
		ID:              appt.ID,
		PatientID:       appt.PatientID,
		DentistID:       appt.DentistID,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          appt.Status,
		Notes:           appt.Notes,
	}

	var patient models.Patient
	if err := s.db.Unscoped().First(&patient, "id = ?", appt.PatientID).Error; err == nil {
		resp.PatientName = patient.FirstName + " " + patient.LastName
	}
	var dentist models.User
	if err := s.db.First(&dentist, "id = ?", appt.DentistID).Error; err == nil {
		resp.DentistName = dentist.FirstName + " " + dentist.LastName
	}
	return resp
}
