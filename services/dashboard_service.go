package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bharatgas/agency-crm-api/models"
)

// DashboardService aggregates headline figures across all four stores.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a dashboard service backed by the given database.
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardSummary is the agency-wide overview shown on the dashboard.
type DashboardSummary struct {
	TotalCustomers      int64   `json:"total_customers"`
	ActiveConnections   int64   `json:"active_connections"`
	TotalBookings       int64   `json:"total_bookings"`
	PendingDeliveries   int64   `json:"pending_deliveries"` // pending + confirmed + out for delivery
	CompletedDeliveries int64   `json:"completed_deliveries"`
	TotalRevenue        float64 `json:"total_revenue"`
	OpenComplaints      int64   `json:"open_complaints"` // open + in progress
}

// Summary computes the dashboard figures.
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	var summary DashboardSummary

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&summary.TotalCustomers, s.db.Model(&models.Customer{})},
		{&summary.ActiveConnections, s.db.Model(&models.Customer{}).
			Where("connection_status = ?", models.ConnectionActive)},
		{&summary.TotalBookings, s.db.Model(&models.Booking{})},
		{&summary.PendingDeliveries, s.db.Model(&models.Booking{}).
			Where("status IN ?", []models.BookingStatus{
				models.BookingPending, models.BookingConfirmed, models.BookingOutForDelivery,
			})},
		{&summary.CompletedDeliveries, s.db.Model(&models.Booking{}).
			Where("status = ?", models.BookingDelivered)},
		{&summary.OpenComplaints, s.db.Model(&models.Complaint{}).
			Where("status IN ?", []models.ComplaintStatus{
				models.ComplaintOpen, models.ComplaintInProgress,
			})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
		}
	}

	err := s.db.Model(&models.Payment{}).
		Where("status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.TotalRevenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}
	return &summary, nil
}
