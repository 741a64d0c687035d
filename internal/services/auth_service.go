package services

import (
	"fmt"
	"log/slog"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fallback when the tenant row is gone but the login is still valid
const defaultTenantName = "Clinic"

type AuthService struct {
	db    *gorm.DB
	codec *token.Codec
}

func NewAuthService(db *gorm.DB, codec *token.Codec) *AuthService {
	return &AuthService{db: db, codec: codec}
}

// Login checks credentials and issues an access token carrying the user's
// tenant and role. The email lookup is the one query in the system that is
// not tenant-scoped: no token exists yet, so the tenant comes from the user
// row itself.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(user.ID, user.TenantID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	tenantName := defaultTenantName
	var t models.Tenant
	if err := s.db.First(&t, "id = ?", user.TenantID).Error; err == nil {
		tenantName = t.Name
	}

	slog.Info("login", "user_id", user.ID.String(), "tenant_id", user.TenantID.String())

	return &dto.LoginResponse{
		Token:      tok,
		UserID:     user.ID,
		TenantID:   user.TenantID,
		TenantName: tenantName,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       string(user.Role),
	}, nil
}
