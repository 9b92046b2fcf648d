package models

import (
	"time"
)

// ConnectionType distinguishes domestic from commercial gas connections.
type ConnectionType string

const (
	ConnectionDomestic   ConnectionType = "domestic"
	ConnectionCommercial ConnectionType = "commercial"
)

// IsValid returns true if the connection type is recognized.
func (t ConnectionType) IsValid() bool {
	return t == ConnectionDomestic || t == ConnectionCommercial
}

// ConnectionStatus represents the standing of a customer's connection.
type ConnectionStatus string

const (
	ConnectionActive    ConnectionStatus = "active"
	ConnectionInactive  ConnectionStatus = "inactive"
	ConnectionSuspended ConnectionStatus = "suspended"
)

// IsValid returns true if the connection status is recognized.
func (s ConnectionStatus) IsValid() bool {
	return s == ConnectionActive || s == ConnectionInactive || s == ConnectionSuspended
}

// Customer represents a registered gas connection holder.
type Customer struct {
	ID               uint             `gorm:"primaryKey" json:"-"`
	CustomerID       string           `gorm:"uniqueIndex;not null" json:"customer_id"` // e.g. BG-CUST-001
	Person           `gorm:"embedded"` // name, phone, email, address
	ConnectionType   ConnectionType   `gorm:"not null" json:"connection_type"`
	ConnectionStatus ConnectionStatus `gorm:"not null;default:'active'" json:"connection_status"`
	RegistrationDate time.Time        `gorm:"not null" json:"registration_date"`
	Bookings         []Booking        `gorm:"foreignKey:CustomerRowID" json:"bookings,omitempty"` // convenience index, bookings table is authoritative
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
