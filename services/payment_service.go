package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/utils"
)

// PaymentService owns the payments collection and revenue aggregation.
type PaymentService struct {
	db  *gorm.DB
	ids *utils.IDGenerator
}

// NewPaymentService creates a payment service backed by the given database.
func NewPaymentService(db *gorm.DB, ids *utils.IDGenerator) *PaymentService {
	return &PaymentService{db: db, ids: ids}
}

// Record stores a payment against a booking. The amount is derived from the
// booked cylinder's price; the caller supplies only the payment mode.
func (s *PaymentService) Record(bookingID string, mode models.PaymentMode) (*models.Payment, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment mode %q", ErrInvalidInput, mode)
	}

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

	payment := models.Payment{
		PaymentID:    s.ids.Next(utils.KindPayment),
		BookingRowID: booking.ID,
		Amount:       booking.Cylinder.Price,
		Mode:         mode,
		Status:       models.PaymentCompleted,
		PaymentDate:  time.Now(),
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	payment.Booking = booking
	return &payment, nil
}

// GetByID looks up a payment by its issued ID (e.g. BG-PAY-001).
func (s *PaymentService) GetByID(paymentID string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Preload("Booking").Preload("Booking.Customer").
		Where("payment_id = ?", normalizeRef(paymentID)).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: payment %s", ErrNotFound, paymentID)
		}
		return nil, fmt.Errorf("failed to look up payment: %w", err)
	}
	return &payment, nil
}

// ListAll returns every payment in creation order.
func (s *PaymentService) ListAll() ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Preload("Booking").Preload("Booking.Customer").
		Order("id").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// ListByBooking returns the payments made against the given booking in
// creation order. An unknown booking yields an empty list, not an error.
func (s *PaymentService) ListByBooking(bookingID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Preload("Booking").Preload("Booking.Customer").
		Joins("JOIN bookings ON bookings.id = payments.booking_row_id").
		Where("bookings.booking_id = ?", normalizeRef(bookingID)).
		Order("payments.id").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by booking: %w", err)
	}
	return payments, nil
}

// ListByMode returns payments made via the given mode in creation order.
func (s *PaymentService) ListByMode(mode models.PaymentMode) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Preload("Booking").Preload("Booking.Customer").
		Where("mode = ?", mode).
		Order("id").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by mode: %w", err)
	}
	return payments, nil
}

// Refund marks a payment refunded. Payments are never deleted; refunding an
// already refunded payment is a no-op.
func (s *PaymentService) Refund(paymentID string) (*models.Payment, error) {
	payment, err := s.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status == models.PaymentRefunded {
		return payment, nil
	}
	payment.Status = models.PaymentRefunded
	if err := s.db.Model(payment).Update("status", models.PaymentRefunded).Error; err != nil {
		return nil, fmt.Errorf("failed to refund payment: %w", err)
	}
	return payment, nil
}

// TotalRevenue sums the amounts of completed payments. Refunded and pending
// payments do not count towards revenue.
func (s *PaymentService) TotalRevenue() (float64, error) {
	var total float64
	err := s.db.Model(&models.Payment{}).
		Where("status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute total revenue: %w", err)
	}
	return total, nil
}

// PaymentReport summarizes payments by status and mode.
type PaymentReport struct {
	Total        int64                        `json:"total"`
	Completed    int64                        `json:"completed"`
	Pending      int64                        `json:"pending"`
	Refunded     int64                        `json:"refunded"`
	TotalRevenue float64                      `json:"total_revenue"`
	ByMode       map[models.PaymentMode]int64 `json:"by_mode"`
}

// Report counts payments per status and mode and totals the revenue.
func (s *PaymentService) Report() (*PaymentReport, error) {
	report := PaymentReport{ByMode: make(map[models.PaymentMode]int64)}

	if err := s.db.Model(&models.Payment{}).Count(&report.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to build payment report: %w", err)
	}
	statusCounts := []struct {
		dest   *int64
		status models.PaymentStatus
	}{
		{&report.Completed, models.PaymentCompleted},
		{&report.Pending, models.PaymentPending},
		{&report.Refunded, models.PaymentRefunded},
	}
	for _, c := range statusCounts {
		err := s.db.Model(&models.Payment{}).Where("status = ?", c.status).Count(c.dest).Error
		if err != nil {
			return nil, fmt.Errorf("failed to build payment report: %w", err)
		}
	}
	for _, mode := range []models.PaymentMode{
		models.PaymentCash, models.PaymentUPI, models.PaymentCard, models.PaymentNetBanking,
	} {
		var count int64
		err := s.db.Model(&models.Payment{}).Where("mode = ?", mode).Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to build payment report: %w", err)
		}
		report.ByMode[mode] = count
	}

	revenue, err := s.TotalRevenue()
	if err != nil {
		return nil, err
	}
	report.TotalRevenue = revenue
	return &report, nil
}
