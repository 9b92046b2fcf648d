package models

import (
	"time"
)

// BookingStatus represents the delivery progress of a booking.
type BookingStatus string

const (
	BookingPending        BookingStatus = "pending"
	BookingConfirmed      BookingStatus = "confirmed"
	BookingOutForDelivery BookingStatus = "out_for_delivery"
	BookingDelivered      BookingStatus = "delivered"
	BookingCancelled      BookingStatus = "cancelled"
)

// IsValid returns true if the booking status is recognized.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingOutForDelivery, BookingDelivered, BookingCancelled:
		return true
	}
	return false
}

// IsTerminal returns true if no further transitions are accepted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingDelivered || s == BookingCancelled
}

// ExpectedDeliveryOffset is how far out deliveries are promised at booking time.
const ExpectedDeliveryOffset = 3 * 24 * time.Hour

// Booking represents a single cylinder refill order tied to one customer.
type Booking struct {
	ID                   uint          `gorm:"primaryKey" json:"-"`
	BookingID            string        `gorm:"uniqueIndex;not null" json:"booking_id"` // e.g. BG-BK-001
	CustomerRowID        uint          `gorm:"not null;index" json:"-"`
	Customer             Customer      `gorm:"foreignKey:CustomerRowID" json:"customer"`
	Cylinder             Cylinder      `gorm:"embedded;embeddedPrefix:cylinder_" json:"cylinder"`
	BookingDate          time.Time     `gorm:"not null" json:"booking_date"`
	ExpectedDeliveryDate time.Time     `gorm:"not null" json:"expected_delivery_date"`
	ActualDeliveryDate   *time.Time    `json:"actual_delivery_date,omitempty"` // set only when delivered
	Status               BookingStatus `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}
