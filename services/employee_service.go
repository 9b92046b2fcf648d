package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/utils"
)

// EmployeeService owns the agency staff roster.
type EmployeeService struct {
	db  *gorm.DB
	ids *utils.IDGenerator
}

// NewEmployeeService creates an employee service backed by the given database.
func NewEmployeeService(db *gorm.DB, ids *utils.IDGenerator) *EmployeeService {
	return &EmployeeService{db: db, ids: ids}
}

// RegisterEmployeeInput carries the fields needed to add a staff member.
type RegisterEmployeeInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Role    models.EmployeeRole
	Salary  float64
}

// Register validates the input, issues an employee ID and stores the new
// staff member.
func (s *EmployeeService) Register(in RegisterEmployeeInput) (*models.Employee, error) {
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
	if !in.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown employee role %q", ErrInvalidInput, in.Role)
	}
	if in.Salary <= 0 {
		return nil, fmt.Errorf("%w: salary must be positive", ErrInvalidInput)
	}

	employee := models.Employee{
		EmployeeID: s.ids.Next(utils.KindEmployee),
		Person: models.Person{
			Name:    strings.TrimSpace(in.Name),
			Phone:   strings.TrimSpace(in.Phone),
			Email:   strings.TrimSpace(in.Email),
			Address: strings.TrimSpace(in.Address),
		},
		Role:   in.Role,
		Salary: in.Salary,
	}
	if err := s.db.Create(&employee).Error; err != nil {
		return nil, fmt.Errorf("failed to register employee: %w", err)
	}
	return &employee, nil
}

// GetByID looks up an employee by their issued ID (e.g. BG-EMP-001).
func (s *EmployeeService) GetByID(employeeID string) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.Where("employee_id = ?", normalizeRef(employeeID)).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employee %s", ErrNotFound, employeeID)
		}
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	return &employee, nil
}

// ListAll returns every employee in hiring order.
func (s *EmployeeService) ListAll() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Order("id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// ListByRole returns employees with the given role in hiring order.
func (s *EmployeeService) ListByRole(role models.EmployeeRole) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Where("role = ?", role).Order("id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees by role: %w", err)
	}
	return employees, nil
}
