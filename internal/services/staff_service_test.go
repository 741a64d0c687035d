package services_test

import (
	"testing"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/services"
	"github.com/stretchr/testify/require"
)

func TestCreateStaffWithLogin(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")

	resp, err := services.NewStaffService(db).Create(tenantID, &dto.CreateStaffRequest{
		FirstName:    "Ana",
		LastName:     "Reyes",
		Specialty:    "Orthodontics",
		HireDate:     "2024-03-01",
		CreateUser:   true,
		UserEmail:    "ana@smile.test",
		UserPassword: "password123",
		UserRole:     string(models.RoleDentist),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.UserID)
	require.Equal(t, "2024-03-01", resp.HireDate)

	// both sides of the link must point at each other
	user := loadUser(t, db, *resp.UserID)
	require.NotNil(t, user.StaffID)
	require.Equal(t, resp.ID, *user.StaffID)
	require.Equal(t, models.RoleDentist, user.Role)
	require.True(t, user.Active)

	// and the fresh login works against the stored hash
	_, err = services.NewAuthService(db, testCodec()).Login(&dto.LoginRequest{
		Email:    "ana@smile.test",
		Password: "password123",
	})
	require.NoError(t, err)
}

func TestCreateStaffLoginRollback(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")
	seedUser(t, db, tenantID, "taken@smile.test", models.RoleAssistant)
	svc := services.NewStaffService(db)

	_, err := svc.Create(tenantID, &dto.CreateStaffRequest{
		FirstName:    "Ana",
		LastName:     "Reyes",
		CreateUser:   true,
		UserEmail:    "taken@smile.test",
		UserPassword: "password123",
	})
	require.ErrorIs(t, err, services.ErrEmailTaken)

	// the staff insert must have rolled back with the failed login creation
	var count int64
	require.NoError(t, db.Model(&models.Staff{}).Where("first_name = ?", "Ana").Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateStaffRejectsWeakLoginPassword(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")

	_, err := services.NewStaffService(db).Create(tenantID, &dto.CreateStaffRequest{
		FirstName:    "Ana",
		LastName:     "Reyes",
		CreateUser:   true,
		UserEmail:    "ana@smile.test",
		UserPassword: "short",
	})
	require.ErrorIs(t, err, services.ErrWeakPassword)
}

func TestCreateStaffRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")

	_, err := services.NewStaffService(db).Create(tenantID, &dto.CreateStaffRequest{
		FirstName:    "Ana",
		LastName:     "Reyes",
		CreateUser:   true,
		UserEmail:    "ana@smile.test",
		UserPassword: "password123",
		UserRole:     "JANITOR",
	})
	require.ErrorIs(t, err, services.ErrInvalidRole)
}

func TestStaffTenantIsolation(t *testing.T) {
	db := newTestDB(t)
	tenantA := seedTenant(t, db, "Clinic A")
	tenantB := seedTenant(t, db, "Clinic B")
	svc := services.NewStaffService(db)

	staff := seedStaff(t, db, tenantA, "Ana", "Reyes")

	got, err := svc.Get(staff.ID, tenantA)
	require.NoError(t, err)
	require.Equal(t, "Ana Reyes", got.FullName)

	_, err = svc.Get(staff.ID, tenantB)
	require.ErrorIs(t, err, services.ErrStaffNotFound)

	require.ErrorIs(t, svc.Delete(staff.ID, tenantB), services.ErrStaffNotFound)
}

func TestStaffSoftDelete(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")
	svc := services.NewStaffService(db)

	staff := seedStaff(t, db, tenantID, "Ana", "Reyes")
	require.NoError(t, svc.Delete(staff.ID, tenantID))

	_, err := svc.Get(staff.ID, tenantID)
	require.ErrorIs(t, err, services.ErrStaffNotFound)
	require.ErrorIs(t, svc.Delete(staff.ID, tenantID), services.ErrStaffNotFound)

	// the row itself survives, only the default scope hides it
	gone := loadStaff(t, db, staff.ID)
	require.True(t, gone.DeletedAt.Valid)

	list, err := svc.List(tenantID)
	require.NoError(t, err)
	require.Empty(t, list)
}
