package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/services"
)

// CustomerController exposes customer registration and connection management.
type CustomerController struct {
	customers *services.CustomerService
}

// NewCustomerController creates a customer controller.
func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

// RegisterCustomerRequest represents the request body for registering a customer
type RegisterCustomerRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Address        string `json:"address" binding:"required"`
	ConnectionType string `json:"connection_type" binding:"required"`
}

// UpdateCustomerRequest represents the request body for updating a customer.
// Omitted fields keep their current values.
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"omitempty"`
	Phone   string `json:"phone" binding:"omitempty"`
	Email   string `json:"email" binding:"omitempty"`
	Address string `json:"address" binding:"omitempty"`
}

// Register handles POST /api/v1/customers
func (ctrl *CustomerController) Register(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	customer, err := ctrl.customers.Register(services.RegisterCustomerInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		ConnectionType: models.ConnectionType(req.ConnectionType),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, customer)
}

// List handles GET /api/v1/customers with optional status and type filters
func (ctrl *CustomerController) List(c *gin.Context) {
	var (
		customers []models.Customer
		err       error
	)
	switch {
	case c.Query("status") != "":
		status := models.ConnectionStatus(c.Query("status"))
		if !status.IsValid() {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown connection status: "+c.Query("status"))
			return
		}
		customers, err = ctrl.customers.ListByStatus(status)
	case c.Query("type") != "":
		connType := models.ConnectionType(c.Query("type"))
		if !connType.IsValid() {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown connection type: "+c.Query("type"))
			return
		}
		customers, err = ctrl.customers.ListByType(connType)
	default:
		customers, err = ctrl.customers.ListAll()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, customers)
}

// Search handles GET /api/v1/customers/search?name=
func (ctrl *CustomerController) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'name' is required")
		return
	}
	customers, err := ctrl.customers.SearchByName(name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, customers)
}

// GetByID handles GET /api/v1/customers/:id
func (ctrl *CustomerController) GetByID(c *gin.Context) {
	customer, err := ctrl.customers.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, customer)
}

// Update handles PUT /api/v1/customers/:id
func (ctrl *CustomerController) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	customer, err := ctrl.customers.Update(c.Param("id"), services.UpdateCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, customer)
}

// Deactivate handles DELETE /api/v1/customers/:id. The record is kept; only
// the connection status moves to inactive.
func (ctrl *CustomerController) Deactivate(c *gin.Context) {
	customer, err := ctrl.customers.Deactivate(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, customer)
}
