package services_test

import (
	"testing"
	"time"

	"github.com/dentora/clinic-backend/internal/database"
	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/services"
	"github.com/dentora/clinic-backend/internal/token"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection would get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testCodec() *token.Codec {
	return token.NewCodec("service-test-secret", time.Hour)
}

func seedTenant(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	tenant := models.Tenant{ID: uuid.New(), Name: name, Active: true}
	require.NoError(t, db.Create(&tenant).Error)
	return tenant.ID
}

func seedUser(t *testing.T, db *gorm.DB, tenantID uuid.UUID, email string, role models.Role) *dto.UserResponse {
	t.Helper()
	resp, err := services.NewUserService(db).Create(tenantID, &dto.CreateUserRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		Role:      string(role),
	})
	require.NoError(t, err)
	return resp
}

func seedStaff(t *testing.T, db *gorm.DB, tenantID uuid.UUID, first, last string) *dto.StaffResponse {
	t.Helper()
	resp, err := services.NewStaffService(db).Create(tenantID, &dto.CreateStaffRequest{
		FirstName: first,
		LastName:  last,
		Specialty: "Orthodontics",
	})
	require.NoError(t, err)
	return resp
}

func seedPatient(t *testing.T, db *gorm.DB, tenantID uuid.UUID, first, last string) *dto.PatientResponse {
	t.Helper()
	resp, err := services.NewPatientService(db).Create(tenantID, &dto.PatientRequest{
		FirstName: first,
		LastName:  last,
		BirthDate: "1990-04-12",
	})
	require.NoError(t, err)
	return resp
}
