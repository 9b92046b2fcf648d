package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/utils"
)

// BookingService owns the bookings collection and its delivery lifecycle.
type BookingService struct {
	db  *gorm.DB
	ids *utils.IDGenerator
}

// NewBookingService creates a booking service backed by the given database.
func NewBookingService(db *gorm.DB, ids *utils.IDGenerator) *BookingService {
	return &BookingService{db: db, ids: ids}
}

// Create books a cylinder refill for the given customer. It fails with
// ErrNotFound if the customer is unknown and ErrNotEligible if the
// customer's connection is not active; in both cases nothing is stored.
func (s *BookingService) Create(customerID, cylinderCode string) (*models.Booking, error) {
	var customer models.Customer
	err := s.db.Where("customer_id = ?", normalizeRef(customerID)).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer.ConnectionStatus != models.ConnectionActive {
		return nil, fmt.Errorf("%w: customer connection is %s, only active connections can book",
			ErrNotEligible, customer.ConnectionStatus)
	}

	cylinder, ok := models.CylinderByCode(cylinderCode)
	if !ok {
		return nil, fmt.Errorf("%w: unknown cylinder type %q", ErrInvalidInput, cylinderCode)
	}

	now := time.Now()
	booking := models.Booking{
		BookingID:            s.ids.Next(utils.KindBooking),
		CustomerRowID:        customer.ID,
		Cylinder:             cylinder,
		BookingDate:          now,
		ExpectedDeliveryDate: now.Add(models.ExpectedDeliveryOffset),
		Status:               models.BookingPending,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	booking.Customer = customer
	return &booking, nil
}

// GetByID looks up a booking by its issued ID (e.g. BG-BK-001).
func (s *BookingService) GetByID(bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Customer").
		Where("booking_id = ?", normalizeRef(bookingID)).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	return &booking, nil
}

// ListAll returns every booking in creation order.
func (s *BookingService) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Preload("Customer").Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// ListByCustomer returns the bookings owned by the given customer, in
// creation order. An unknown customer yields an empty list, not an error.
func (s *BookingService) ListByCustomer(customerID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Customer").
		Joins("JOIN customers ON customers.id = bookings.customer_row_id").
		Where("customers.customer_id = ?", normalizeRef(customerID)).
		Order("bookings.id").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by customer: %w", err)
	}
	return bookings, nil
}

// ListByStatus returns bookings with the given status in creation order.
func (s *BookingService) ListByStatus(status models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Customer").
		Where("status = ?", status).
		Order("id").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by status: %w", err)
	}
	return bookings, nil
}

// AdvanceStatus moves a booking's delivery progress forward to confirmed,
// out_for_delivery or delivered. Delivered bookings are additionally stamped
// with the actual delivery time. Advancing a delivered or cancelled booking
// fails with ErrInvalidTransition.
func (s *BookingService) AdvanceStatus(bookingID string, newStatus models.BookingStatus) (*models.Booking, error) {
	switch newStatus {
	case models.BookingConfirmed, models.BookingOutForDelivery, models.BookingDelivered:
	case models.BookingCancelled:
		return nil, fmt.Errorf("%w: use cancel to cancel a booking", ErrInvalidTransition)
	default:
		return nil, fmt.Errorf("%w: cannot advance a booking to %q", ErrInvalidTransition, newStatus)
	}

	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: booking %s is already %s",
			ErrInvalidTransition, booking.BookingID, booking.Status)
	}

	updates := map[string]interface{}{"status": newStatus}
	if newStatus == models.BookingDelivered {
		now := time.Now()
		updates["actual_delivery_date"] = &now
		booking.ActualDeliveryDate = &now
	}
	if err := s.db.Model(booking).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	booking.Status = newStatus
	return booking, nil
}

// Cancel marks a booking cancelled. Bookings are never deleted. Cancelling
// an already cancelled booking is a no-op; a delivered booking cannot be
// cancelled.
func (s *BookingService) Cancel(bookingID string) (*models.Booking, error) {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingCancelled {
		return booking, nil
	}
	if booking.Status == models.BookingDelivered {
		return nil, fmt.Errorf("%w: booking %s has already been delivered",
			ErrInvalidTransition, booking.BookingID)
	}
	booking.Status = models.BookingCancelled
	if err := s.db.Model(booking).Update("status", models.BookingCancelled).Error; err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	return booking, nil
}

// BookingReport summarizes bookings per delivery status.
type BookingReport struct {
	Total          int64 `json:"total"`
	Pending        int64 `json:"pending"`
	Confirmed      int64 `json:"confirmed"`
	OutForDelivery int64 `json:"out_for_delivery"`
	Delivered      int64 `json:"delivered"`
	Cancelled      int64 `json:"cancelled"`
}

// Report counts bookings per status.
func (s *BookingService) Report() (*BookingReport, error) {
	var report BookingReport
	counts := []struct {
		dest   *int64
		status models.BookingStatus
	}{
		{&report.Pending, models.BookingPending},
		{&report.Confirmed, models.BookingConfirmed},
		{&report.OutForDelivery, models.BookingOutForDelivery},
		{&report.Delivered, models.BookingDelivered},
		{&report.Cancelled, models.BookingCancelled},
	}
	if err := s.db.Model(&models.Booking{}).Count(&report.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to build booking report: %w", err)
	}
	for _, c := range counts {
		err := s.db.Model(&models.Booking{}).Where("status = ?", c.status).Count(c.dest).Error
		if err != nil {
			return nil, fmt.Errorf("failed to build booking report: %w", err)
		}
	}
	return &report, nil
}
