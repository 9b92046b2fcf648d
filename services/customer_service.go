package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/utils"
)

// CustomerService owns the customers collection. It is the sole mutator of
// customer connection status; other services hold read-only references.
type CustomerService struct {
	db  *gorm.DB
	ids *utils.IDGenerator
}

// NewCustomerService creates a customer service backed by the given database.
func NewCustomerService(db *gorm.DB, ids *utils.IDGenerator) *CustomerService {
	return &CustomerService{db: db, ids: ids}
}

// RegisterCustomerInput carries the fields needed to register a customer.
type RegisterCustomerInput struct {
	Name           string
	Phone          string
	Email          string
	Address        string
	ConnectionType models.ConnectionType
}

// UpdateCustomerInput carries optional replacement values for a customer's
// mutable fields. Empty fields are left unchanged.
type UpdateCustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Register validates the input, issues a customer ID and stores the new
// customer with an active connection.
func (s *CustomerService) Register(in RegisterCustomerInput) (*models.Customer, error) {
	if !utils.IsValidName(in.Name) {
		return nil, fmt.Errorf("%w: name must be 2-50 letters and spaces", ErrInvalidInput)
	}
	if !utils.IsValidPhone(in.Phone) {
		return nil, fmt.Errorf("%w: phone must be a 10-digit Indian mobile number", ErrInvalidInput)
	}
	if !utils.IsValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if !utils.IsNotEmpty(in.Address) {
		return nil, fmt.Errorf("%w: address cannot be empty", ErrInvalidInput)
	}
	if !in.ConnectionType.IsValid() {
		return nil, fmt.Errorf("%w: connection type must be domestic or commercial", ErrInvalidInput)
	}

	customer := models.Customer{
		CustomerID: s.ids.Next(utils.KindCustomer),
		Person: models.Person{
			Name:    strings.TrimSpace(in.Name),
			Phone:   strings.TrimSpace(in.Phone),
			Email:   strings.TrimSpace(in.Email),
			Address: strings.TrimSpace(in.Address),
		},
		ConnectionType:   in.ConnectionType,
		ConnectionStatus: models.ConnectionActive,
		RegistrationDate: time.Now(),
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}
	return &customer, nil
}

// GetByID looks up a customer by its issued ID (e.g. BG-CUST-001).
// The lookup ignores case and surrounding whitespace.
func (s *CustomerService) GetByID(customerID string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Preload("Bookings").
		Where("customer_id = ?", normalizeRef(customerID)).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	return &customer, nil
}

// ListAll returns every customer in registration order.
func (s *CustomerService) ListAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// SearchByName returns customers whose name contains the given substring,
// case-insensitively, in registration order. LIKE metacharacters in the
// substring are matched literally.
func (s *CustomerService) SearchByName(name string) ([]models.Customer, error) {
	var customers []models.Customer
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(name))) + "%"
	if err := s.db.Where(`lower(name) LIKE ? ESCAPE '\'`, pattern).Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}

// ListByStatus returns customers with the given connection status.
func (s *CustomerService) ListByStatus(status models.ConnectionStatus) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Where("connection_status = ?", status).Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers by status: %w", err)
	}
	return customers, nil
}

// ListByType returns customers with the given connection type.
func (s *CustomerService) ListByType(connType models.ConnectionType) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Where("connection_type = ?", connType).Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers by type: %w", err)
	}
	return customers, nil
}

// Update replaces the provided mutable fields of a customer. Each provided
// field is revalidated individually; empty fields keep their current value.
func (s *CustomerService) Update(customerID string, in UpdateCustomerInput) (*models.Customer, error) {
	customer, err := s.GetByID(customerID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Name != "" {
		if !utils.IsValidName(in.Name) {
			return nil, fmt.Errorf("%w: name must be 2-50 letters and spaces", ErrInvalidInput)
		}
		updates["name"] = strings.TrimSpace(in.Name)
	}
	if in.Phone != "" {
		if !utils.IsValidPhone(in.Phone) {
			return nil, fmt.Errorf("%w: phone must be a 10-digit Indian mobile number", ErrInvalidInput)
		}
		updates["phone"] = strings.TrimSpace(in.Phone)
	}
	if in.Email != "" {
		if !utils.IsValidEmail(in.Email) {
			return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
		}
		updates["email"] = strings.TrimSpace(in.Email)
	}
	if in.Address != "" {
		if !utils.IsNotEmpty(in.Address) {
			return nil, fmt.Errorf("%w: address cannot be empty", ErrInvalidInput)
		}
		updates["address"] = strings.TrimSpace(in.Address)
	}

	if len(updates) == 0 {
		return customer, nil
	}
	if err := s.db.Model(customer).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return s.GetByID(customerID)
}

// Deactivate sets a customer's connection status to inactive. Records are
// never deleted; deactivating an already inactive customer is a no-op.
func (s *CustomerService) Deactivate(customerID string) (*models.Customer, error) {
	customer, err := s.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer.ConnectionStatus == models.ConnectionInactive {
		return customer, nil
	}
	customer.ConnectionStatus = models.ConnectionInactive
	if err := s.db.Model(customer).Update("connection_status", models.ConnectionInactive).Error; err != nil {
		return nil, fmt.Errorf("failed to deactivate customer: %w", err)
	}
	return customer, nil
}

// CustomerReport summarizes the customer base.
type CustomerReport struct {
	Total      int64 `json:"total"`
	Active     int64 `json:"active"`
	Inactive   int64 `json:"inactive"`
	Suspended  int64 `json:"suspended"`
	Domestic   int64 `json:"domestic"`
	Commercial int64 `json:"commercial"`
}

// Report counts customers by connection status and type.
func (s *CustomerService) Report() (*CustomerReport, error) {
	var report CustomerReport
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&report.Total, s.db.Model(&models.Customer{})},
		{&report.Active, s.db.Model(&models.Customer{}).Where("connection_status = ?", models.ConnectionActive)},
		{&report.Inactive, s.db.Model(&models.Customer{}).Where("connection_status = ?", models.ConnectionInactive)},
		{&report.Suspended, s.db.Model(&models.Customer{}).Where("connection_status = ?", models.ConnectionSuspended)},
		{&report.Domestic, s.db.Model(&models.Customer{}).Where("connection_type = ?", models.ConnectionDomestic)},
		{&report.Commercial, s.db.Model(&models.Customer{}).Where("connection_type = ?", models.ConnectionCommercial)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to build customer report: %w", err)
		}
	}
	return &report, nil
}

// normalizeRef uppercases and trims an issued entity ID so lookups are
// case-insensitive. All issued IDs are uppercase.
func normalizeRef(ref string) string {
	return strings.ToUpper(strings.TrimSpace(ref))
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
