package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/utils"
)

func TestSeedIDCounters(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Booking{},
		&models.Payment{},
		&models.Complaint{},
		&models.Employee{},
	))

	// Simulate two customers already on disk
	for _, id := range []string{"BG-CUST-001", "BG-CUST-002"} {
		customer := models.Customer{
			CustomerID: id,
			Person: models.Person{
				Name: "Ravi Kumar", Phone: "9876543210",
				Email: "ravi@example.com", Address: "12 MG Road",
			},
			ConnectionType:   models.ConnectionDomestic,
			ConnectionStatus: models.ConnectionActive,
		}
		require.NoError(t, db.Create(&customer).Error)
	}

	ids := utils.NewIDGenerator()
	require.NoError(t, seedIDCounters(db, ids))

	// The next issued ID continues past the existing rows
	assert.Equal(t, "BG-CUST-003", ids.Next(utils.KindCustomer))
	// Untouched kinds start from the beginning
	assert.Equal(t, "BG-BK-001", ids.Next(utils.KindBooking))
}
