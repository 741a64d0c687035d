package services

import (
	"fmt"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/tenant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService manages login identities and the user↔staff link. Link and
// unlink touch two rows; both always change inside one transaction so the
// bidirectional invariant (User.StaffID = S iff Staff[S].UserID = U) is never
// observable half-updated, even when the request is cancelled mid-flight.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(tenantID uuid.UUID) ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, s.toResponse(&users[i]))
	}
	return out, nil
}

func (s *UserService) Create(tenantID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}

	var existing models.User
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		Active:    true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if req.StaffID != nil {
			return linkInTx(tx, tenantID, user.ID, *req.StaffID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// re-read so the response reflects the link set inside the transaction
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&user, "id = ?", user.ID).Error; err != nil {
		return nil, err
	}
	resp := s.toResponse(&user)
	return &resp, nil
}

func (s *UserService) Update(id, tenantID uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	var user models.User
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Role = role
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	resp := s.toResponse(&user)
	return &resp, nil
}

func (s *UserService) ChangePassword(id, tenantID uuid.UUID, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	var user models.User
	if err := s.db.Scopes(tenant.ForTenant(tenantID)).First(&user, "id = ?", id).Error; err != nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.db.Model(&user).Update("password", string(hash)).Error
}

// SetActive toggles a login on or off without touching its data.
func (s *UserService) SetActive(id, tenantID uuid.UUID, active bool) error {
	result := s.db.Model(&models.User{}).
		Scopes(tenant.ForTenant(tenantID)).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// LinkStaff connects a login to a staff profile. Both rows must exist in the
// caller's tenant and neither may already be linked.
func (s *UserService) LinkStaff(userID, staffID, tenantID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return linkInTx(tx, tenantID, userID, staffID)
	})
}

func linkInTx(tx *gorm.DB, tenantID, userID, staffID uuid.UUID) error {
	var user models.User
	if err := tx.Scopes(tenant.ForTenant(tenantID)).First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}
	var staff models.Staff
	if err := tx.Scopes(tenant.ForTenant(tenantID)).First(&staff, "id = ?", staffID).Error; err != nil {
		return ErrStaffNotFound
	}
	if user.StaffID != nil || staff.UserID != nil {
		return ErrAlreadyLinked
	}

	if err := tx.Model(&user).Update("staff_id", staffID).Error; err != nil {
		return err
	}
	return tx.Model(&staff).Update("user_id", userID).Error
}

// UnlinkStaff clears both sides of an existing link.
func (s *UserService) UnlinkStaff(userID, tenantID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Scopes(tenant.ForTenant(tenantID)).First(&user, "id = ?", userID).Error; err != nil {
			return ErrUserNotFound
		}
		if user.StaffID == nil {
			return ErrNotLinked
		}

		// Unscoped: the partner side must be cleared even if the profile was
		// soft-deleted in the meantime.
		var staff models.Staff
		if err := tx.Unscoped().Scopes(tenant.ForTenant(tenantID)).First(&staff, "id = ?", *user.StaffID).Error; err == nil {
			if err := tx.Unscoped().Model(&staff).Update("user_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Model(&user).Update("staff_id", nil).Error
	})
}

func (s *UserService) toResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:        user.ID,
		TenantID:  user.TenantID,
		StaffID:   user.StaffID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
	if user.StaffID != nil {
		var staff models.Staff
		if err := s.db.First(&staff, "id = ?", *user.StaffID).Error; err == nil {
			name := staff.FirstName + " " + staff.LastName
			resp.StaffName = &name
		}
	}
	return resp
}
