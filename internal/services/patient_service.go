package services

import (
	"fmt"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientService struct {
	db *gorm.DB
}

func NewPatientService(db *gorm.DB) *PatientService {
	return &PatientService{db: db}
}

func (s *PatientService) List(tenantID uuid.UUID) ([]dto.PatientResponse, error) {
	var patients []models.Patient
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).Order("created_at").Find(&patients).Error; err != nil {
		return nil, err
	}

	out := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		out = append(out, toPatientResponse(&patients[i]))
	}
	return out, nil
}

func (s *PatientService) Get(id, tenantID uuid.UUID) (*dto.PatientResponse, error) {
	var patient models.Patient
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&patient, "id = ?", id).Error; err != nil {
		return nil, ErrPatientNotFound
	}
	resp := toPatientResponse(&patient)
	return &resp, nil
}

func (s *PatientService) Create(tenantID uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	patient := models.Patient{
		ID:        uuid.New(),
		TenantID:  tenantID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		BirthDate: birthDate,
	}
	if err := s.db.Create(&patient).Error; err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	resp := toPatientResponse(&patient)
	return &resp, nil
}

func (s *PatientService) Update(id, tenantID uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	var patient models.Patient
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&patient, "id = ?", id).Error; err != nil {
		return nil, ErrPatientNotFound
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.BirthDate = birthDate
	if err := s.db.Save(&patient).Error; err != nil {
		return nil, err
	}

	resp := toPatientResponse(&patient)
	return &resp, nil
}

func (s *PatientService) Delete(id, tenantID uuid.UUID) error {
	result := s.db.Scopes(tenant.ForTenant(tenantID)).Where("id = ?", id).Delete(&models.Patient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func toPatientResponse(patient *models.Patient) dto.PatientResponse {
	resp := dto.PatientResponse{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		FullName:  patient.FirstName + " " + patient.LastName,
		Phone:     patient.Phone,
		Email:     patient.Email,
	}
	if patient.BirthDate != nil {
		resp.BirthDate = patient.BirthDate.Format(dateLayout)
	}
	return resp
}
