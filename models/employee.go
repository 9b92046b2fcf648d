package models

import (
	"time"
)

// EmployeeRole is the job a staff member performs at the agency.
type EmployeeRole string

const (
	RoleAdmin           EmployeeRole = "admin"
	RoleDeliveryPerson  EmployeeRole = "delivery_person"
	RoleCustomerSupport EmployeeRole = "customer_support"
)

// IsValid returns true if the role is recognized.
func (r EmployeeRole) IsValid() bool {
	return r == RoleAdmin || r == RoleDeliveryPerson || r == RoleCustomerSupport
}

// Employee represents a staff member of the agency.
type Employee struct {
	ID         uint         `gorm:"primaryKey" json:"-"`
	EmployeeID string       `gorm:"uniqueIndex;not null" json:"employee_id"` // e.g. BG-EMP-001
	Person     `gorm:"embedded"`
	Role       EmployeeRole `gorm:"not null" json:"role"`
	Salary     float64      `gorm:"not null" json:"salary"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
