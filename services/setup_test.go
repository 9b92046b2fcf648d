package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/bharatgas/agency-crm-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Booking{},
		&models.Payment{},
		&models.Complaint{},
		&models.Employee{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// registerActiveCustomer registers a valid domestic customer for use as a
// fixture in booking, payment and complaint tests.
func registerActiveCustomer(t *testing.T, customers *CustomerService) *models.Customer {
	t.Helper()

	customer, err := customers.Register(RegisterCustomerInput{
		Name:           "Ravi Kumar",
		Phone:          "9876543210",
		Email:          "ravi@example.com",
		Address:        "12 MG Road, Pune",
		ConnectionType: models.ConnectionDomestic,
	})
	if err != nil {
		t.Fatalf("Failed to register fixture customer: %v", err)
	}
	return customer
}
