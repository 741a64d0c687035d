package dto

type DashboardStats struct {
	TotalPatients       int64 `json:"total_patients"`
	ActiveStaff         int64 `json:"active_staff"`
	AppointmentsToday   int64 `json:"appointments_today"`
	AppointmentsPending int64 `json:"appointments_pending"`
}
