package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/services"
)

// BookingController exposes cylinder refill bookings and delivery tracking.
type BookingController struct {
	bookings *services.BookingService
}

// NewBookingController creates a booking controller.
func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// CreateBookingRequest represents the request body for booking a refill
type CreateBookingRequest struct {
	CustomerID   string `json:"customer_id" binding:"required"`
	CylinderType string `json:"cylinder_type" binding:"required"` // 14.2kg, 5kg or 19kg
}

// UpdateBookingStatusRequest represents the request body for advancing
// a booking's delivery status
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create handles POST /api/v1/bookings
func (ctrl *BookingController) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	booking, err := ctrl.bookings.Create(req.CustomerID, req.CylinderType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, booking)
}

// List handles GET /api/v1/bookings with optional customer_id and status filters
func (ctrl *BookingController) List(c *gin.Context) {
	var (
		bookings []models.Booking
		err      error
	)
	switch {
	case c.Query("customer_id") != "":
		bookings, err = ctrl.bookings.ListByCustomer(c.Query("customer_id"))
	case c.Query("status") != "":
		status := models.BookingStatus(c.Query("status"))
		if !status.IsValid() {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown booking status: "+c.Query("status"))
			return
		}
		bookings, err = ctrl.bookings.ListByStatus(status)
	default:
		bookings, err = ctrl.bookings.ListAll()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, bookings)
}

// GetByID handles GET /api/v1/bookings/:id
func (ctrl *BookingController) GetByID(c *gin.Context) {
	booking, err := ctrl.bookings.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, booking)
}

// UpdateStatus handles PATCH /api/v1/bookings/:id/status
func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	booking, err := ctrl.bookings.AdvanceStatus(c.Param("id"), models.BookingStatus(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, booking)
}

// Cancel handles DELETE /api/v1/bookings/:id. The record is kept; the
// booking moves to cancelled.
func (ctrl *BookingController) Cancel(c *gin.Context) {
	booking, err := ctrl.bookings.Cancel(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, booking)
}

// ListCylinders handles GET /api/v1/cylinders - the fixed-price catalog
func (ctrl *BookingController) ListCylinders(c *gin.Context) {
	catalog := make(map[string]models.Cylinder, len(models.CylinderCatalog))
	for code, factory := range models.CylinderCatalog {
		catalog[code] = factory()
	}
	respondData(c, http.StatusOK, catalog)
}
