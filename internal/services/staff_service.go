package services

import (
	"fmt"
	"time"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/tenant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type StaffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

func (s *StaffService) List(tenantID uuid.UUID) ([]dto.StaffResponse, error) {
	var staff []models.Staff
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).Order("created_at").Find(&staff).Error; err != nil {
		return nil, err
	}

	out := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		out = append(out, toStaffResponse(&staff[i]))
	}
	return out, nil
}

func (s *StaffService) Get(id, tenantID uuid.UUID) (*dto.StaffResponse, error) {
	var staff models.Staff
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&staff, "id = ?", id).Error; err != nil {
		return nil, ErrStaffNotFound
	}
	resp := toStaffResponse(&staff)
	return &resp, nil
}

// Create adds a staff profile and, when requested, provisions a linked login
// in the same transaction: profile → user → link. A failure at any step rolls
// everything back, so no orphaned profile or login is left behind.
func (s *StaffService) Create(tenantID uuid.UUID, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	staff := models.Staff{
		ID:            uuid.New(),
		TenantID:      tenantID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Email:         req.Email,
		Specialty:     req.Specialty,
		LicenseNumber: req.LicenseNumber,
		HireDate:      hireDate,
		Active:        req.Active == nil || *req.Active,
	}

	if !req.CreateUser || req.UserEmail == "" || req.UserPassword == "" {
		if err := s.db.Create(&staff).Error; err != nil {
			return nil, fmt.Errorf("failed to create staff: %w", err)
		}
		resp := toStaffResponse(&staff)
		return &resp, nil
	}

	role := models.RoleDentist
	if req.UserRole != "" {
		role = models.Role(req.UserRole)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
	}
	if len(req.UserPassword) < 8 {
		return nil, ErrWeakPassword
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&staff).Error; err != nil {
			return fmt.Errorf("failed to create staff: %w", err)
		}

		var existing models.User
		if err := tx.Scopes(tenant.ForTenant(tenantID)).Where("email = ?", req.UserEmail).First(&existing).Error; err == nil {
			return ErrEmailTaken
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := models.User{
			ID:        uuid.New(),
			TenantID:  tenantID,
			StaffID:   &staff.ID,
			Email:     req.UserEmail,
			Password:  string(hash),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      role,
			Active:    true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user for staff: %w", err)
		}

		staff.UserID = &user.ID
		return tx.Model(&staff).Update("user_id", user.ID).Error
	})
	if err != nil {
		return nil, err
	}

	resp := toStaffResponse(&staff)
	return &resp, nil
}

func (s *StaffService) Update(id, tenantID uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	var staff models.Staff
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&staff, "id = ?", id).Error; err != nil {
		return nil, ErrStaffNotFound
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	staff.FirstName = req.FirstName
	staff.LastName = req.LastName
	staff.Phone = req.Phone
	staff.Email = req.Email
	staff.Specialty = req.Specialty
	staff.LicenseNumber = req.LicenseNumber
	staff.HireDate = hireDate
	if req.Active != nil {
		staff.Active = *req.Active
	}
	if err := s.db.Save(&staff).Error; err != nil {
		return nil, err
	}

	resp := toStaffResponse(&staff)
	return &resp, nil
}

// Delete soft-deletes the profile. Deleting an absent or already-deleted
// profile is the same not-found outcome.
func (s *StaffService) Delete(id, tenantID uuid.UUID) error {
	result := s.db.Scopes(tenant.ForTenant(tenantID)).Where("id = ?", id).Delete(&models.Staff{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaffNotFound
	}
	return nil
}

func toStaffResponse(staff *models.Staff) dto.StaffResponse {
	resp := dto.StaffResponse{
		ID:            staff.ID,
		UserID:        staff.UserID,
		FirstName:     staff.FirstName,
		LastName:      staff.LastName,
		FullName:      staff.FirstName + " " + staff.LastName,
		Phone:         staff.Phone,
		Email:         staff.Email,
		Specialty:     staff.Specialty,
		LicenseNumber: staff.LicenseNumber,
		Active:        staff.Active,
	}
	if staff.HireDate != nil {
		resp.HireDate = staff.HireDate.Format(dateLayout)
	}
	return resp
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return &d, nil
}
