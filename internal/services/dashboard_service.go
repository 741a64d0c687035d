package services

import (
	"time"

	"github.com/dentora/clinic-backend/internal/dto"
	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Stats returns the per-tenant counters shown on the dashboard. Soft-deleted
// patients and staff are excluded by the default scope.
func (s *DashboardService) Stats(tenantID uuid.UUID) (*dto.DashboardStats, error) {
	var stats dto.DashboardStats

	if err := s.db.Model(&models.Patient{}).Scopes(tenant.ForTenant(tenantID)).
		Count(&stats.TotalPatients).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Staff{}).Scopes(tenant.ForTenant(tenantID)).
		Where("active = ?", true).
		Count(&stats.ActiveStaff).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := s.db.Model(&models.Appointment{}).Scopes(tenant.ForTenant(tenantID)).
		Where("start_time >= ? AND start_time < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&stats.AppointmentsToday).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Appointment{}).Scopes(tenant.ForTenant(tenantID)).
		Where("status = ?", models.AppointmentScheduled).
		Count(&stats.AppointmentsPending).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
