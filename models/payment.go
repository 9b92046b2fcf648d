package models

import (
	"time"
)

// PaymentMode is how a payment was made.
type PaymentMode string

const (
	PaymentCash       PaymentMode = "cash"
	PaymentUPI        PaymentMode = "upi"
	PaymentCard       PaymentMode = "card"
	PaymentNetBanking PaymentMode = "netbanking"
)

// IsValid returns true if the payment mode is recognized.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentNetBanking:
		return true
	}
	return false
}

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment represents a payment made against a cylinder booking.
// The amount always equals the booked cylinder's price at creation time.
type Payment struct {
	ID           uint          `gorm:"primaryKey" json:"-"`
	PaymentID    string        `gorm:"uniqueIndex;not null" json:"payment_id"` // e.g. BG-PAY-001
	BookingRowID uint          `gorm:"not null;index" json:"-"`
	Booking      Booking       `gorm:"foreignKey:BookingRowID" json:"booking"`
	Amount       float64       `gorm:"not null" json:"amount"`
	Mode         PaymentMode   `gorm:"not null" json:"mode"`
	Status       PaymentStatus `gorm:"not null;default:'completed'" json:"status"`
	PaymentDate  time.Time     `gorm:"not null" json:"payment_date"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
