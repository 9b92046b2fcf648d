package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/services"
)

// EmployeeController exposes the agency staff roster.
type EmployeeController struct {
	employees *services.EmployeeService
}

// NewEmployeeController creates an employee controller.
func NewEmployeeController(employees *services.EmployeeService) *EmployeeController {
	return &EmployeeController{employees: employees}
}

// RegisterEmployeeRequest represents the request body for adding a staff member
type RegisterEmployeeRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Address string  `json:"address" binding:"required"`
	Role    string  `json:"role" binding:"required"` // admin, delivery_person or customer_support
	Salary  float64 `json:"salary" binding:"required,gt=0"`
}

// Register handles POST /api/v1/employees
func (ctrl *EmployeeController) Register(c *gin.Context) {
	var req RegisterEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	employee, err := ctrl.employees.Register(services.RegisterEmployeeInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Role:    models.EmployeeRole(req.Role),
		Salary:  req.Salary,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, employee)
}

// List handles GET /api/v1/employees with an optional role filter
func (ctrl *EmployeeController) List(c *gin.Context) {
	var (
		employees []models.Employee
		err       error
	)
	if role := c.Query("role"); role != "" {
		employeeRole := models.EmployeeRole(role)
		if !employeeRole.IsValid() {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown employee role: "+role)
			return
		}
		employees, err = ctrl.employees.ListByRole(employeeRole)
	} else {
		employees, err = ctrl.employees.ListAll()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, employees)
}

// GetByID handles GET /api/v1/employees/:id
func (ctrl *EmployeeController) GetByID(c *gin.Context) {
	employee, err := ctrl.employees.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, employee)
}
