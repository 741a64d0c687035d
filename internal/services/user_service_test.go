package services_test

import (
	"testing"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func loadUser(t *testing.T, db *gorm.DB, id uuid.UUID) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, "id = ?", id).Error)
	return user
}

func loadStaff(t *testing.T, db *gorm.DB, id uuid.UUID) models.Staff {
	t.Helper()
	var staff models.Staff
	require.NoError(t, db.Unscoped().First(&staff, "id = ?", id).Error)
	return staff
}

func TestLinkStaffSymmetry(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")
	svc := services.NewUserService(db)

	user := seedUser(t, db, tenantID, "dr@smile.test", models.RoleDentist)
	staff := seedStaff(t, db, tenantID, "Ana", "Reyes")

	require.NoError(t, svc.LinkStaff(user.ID, staff.ID, tenantID))

	gotUser := loadUser(t, db, user.ID)
	gotStaff := loadStaff(t, db, staff.ID)
	require.NotNil(t, gotUser.StaffID)
	require.NotNil(t, gotStaff.UserID)
	require.Equal(t, staff.ID, *gotUser.StaffID)
	require.Equal(t, user.ID, *gotStaff.UserID)

	require.NoError(t, svc.UnlinkStaff(user.ID, tenantID))

	gotUser = loadUser(t, db, user.ID)
	gotStaff = loadStaff(t, db, staff.ID)
	require.Nil(t, gotUser.StaffID)
	require.Nil(t, gotStaff.UserID)

	// a second unlink has nothing to clear
	require.ErrorIs(t, svc.UnlinkStaff(user.ID, tenantID), services.ErrNotLinked)
}

func TestLinkStaffAlreadyLinked(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")
	svc := services.NewUserService(db)

	userA := seedUser(t, db, tenantID, "a@smile.test", models.RoleDentist)
	userB := seedUser(t, db, tenantID, "b@smile.test", models.RoleDentist)
	staff := seedStaff(t, db, tenantID, "Ana", "Reyes")

	require.NoError(t, svc.LinkStaff(userA.ID, staff.ID, tenantID))
	require.ErrorIs(t, svc.LinkStaff(userB.ID, staff.ID, tenantID), services.ErrAlreadyLinked)

	// the failed attempt must not have touched userB
	require.Nil(t, loadUser(t, db, userB.ID).StaffID)
}

func TestLinkStaffCrossTenant(t *testing.T) {
	db := newTestDB(t)
	tenantA := seedTenant(t, db, "Clinic A")
	tenantB := seedTenant(t, db, "Clinic B")
	svc := services.NewUserService(db)

	user := seedUser(t, db, tenantA, "a@clinic.test", models.RoleDentist)
	foreignStaff := seedStaff(t, db, tenantB, "Bea", "Lopez")

	// a staff row in another tenant is indistinguishable from a missing one
	require.ErrorIs(t, svc.LinkStaff(user.ID, foreignStaff.ID, tenantA), services.ErrStaffNotFound)
	require.Nil(t, loadUser(t, db, user.ID).StaffID)
}

func TestCreateUserWithStaffLink(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")
	staff := seedStaff(t, db, tenantID, "Ana", "Reyes")

	resp, err := services.NewUserService(db).Create(tenantID, &dto.CreateUserRequest{
		Email:     "ana@smile.test",
		Password:  "password123",
		FirstName: "Ana",
		LastName:  "Reyes",
		Role:      string(models.RoleDentist),
		StaffID:   &staff.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.StaffID)
	require.Equal(t, staff.ID, *resp.StaffID)
	require.NotNil(t, resp.StaffName)
	require.Equal(t, "Ana Reyes", *resp.StaffName)

	gotStaff := loadStaff(t, db, staff.ID)
	require.NotNil(t, gotStaff.UserID)
	require.Equal(t, resp.ID, *gotStaff.UserID)
}

func TestCreateUserWithMissingStaffRollsBack(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")
	svc := services.NewUserService(db)

	missing := uuid.New()
	_, err := svc.Create(tenantID, &dto.CreateUserRequest{
		Email:    "ghost@smile.test",
		Password: "password123",
		Role:     string(models.RoleDentist),
		StaffID:  &missing,
	})
	require.ErrorIs(t, err, services.ErrStaffNotFound)

	// the user insert must have rolled back with the failed link
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "ghost@smile.test").Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")
	seedUser(t, db, tenantID, "dup@smile.test", models.RoleAssistant)

	_, err := services.NewUserService(db).Create(tenantID, &dto.CreateUserRequest{
		Email:    "dup@smile.test",
		Password: "password123",
		Role:     string(models.RoleAssistant),
	})
	require.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestCreateUserSameEmailDifferentTenant(t *testing.T) {
	db := newTestDB(t)
	tenantA := seedTenant(t, db, "Clinic A")
	tenantB := seedTenant(t, db, "Clinic B")

	seedUser(t, db, tenantA, "shared@clinic.test", models.RoleAssistant)
	// per-tenant uniqueness only
	seedUser(t, db, tenantB, "shared@clinic.test", models.RoleAssistant)
}

func TestSetActive(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")
	svc := services.NewUserService(db)
	user := seedUser(t, db, tenantID, "x@smile.test", models.RoleAssistant)

	require.NoError(t, svc.SetActive(user.ID, tenantID, false))
	require.False(t, loadUser(t, db, user.ID).Active)

	require.NoError(t, svc.SetActive(user.ID, tenantID, true))
	require.True(t, loadUser(t, db, user.ID).Active)

	require.ErrorIs(t, svc.SetActive(uuid.New(), tenantID, false), services.ErrUserNotFound)

	// cross-tenant toggle behaves like a missing user
	other := seedTenant(t, db, "Clinic B")
	require.ErrorIs(t, svc.SetActive(user.ID, other, false), services.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	tenantID := seedTenant(t, db, "Smile Clinic")
	svc := services.NewUserService(db)
	user := seedUser(t, db, tenantID, "pw@smile.test", models.RoleAssistant)

	require.ErrorIs(t, svc.ChangePassword(user.ID, tenantID, "short"), services.ErrWeakPassword)

	before := loadUser(t, db, user.ID).Password
	require.NoError(t, svc.ChangePassword(user.ID, tenantID, "brand-new-password"))
	require.NotEqual(t, before, loadUser(t, db, user.ID).Password)
}
