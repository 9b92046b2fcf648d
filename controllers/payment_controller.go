package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/services"
)

// PaymentController exposes payment recording and refunds.
type PaymentController struct {
	payments *services.PaymentService
}

// NewPaymentController creates a payment controller.
func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// RecordPaymentRequest represents the request body for recording a payment.
// The amount is never supplied by the caller; it is derived from the booked
// cylinder's price.
type RecordPaymentRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Mode      string `json:"mode" binding:"required"` // cash, upi, card or netbanking
}

// Record handles POST /api/v1/payments
func (ctrl *PaymentController) Record(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	payment, err := ctrl.payments.Record(req.BookingID, models.PaymentMode(req.Mode))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, payment)
}

// List handles GET /api/v1/payments with optional booking_id and mode filters
func (ctrl *PaymentController) List(c *gin.Context) {
	var (
		payments []models.Payment
		err      error
	)
	switch {
	case c.Query("booking_id") != "":
		payments, err = ctrl.payments.ListByBooking(c.Query("booking_id"))
	case c.Query("mode") != "":
		mode := models.PaymentMode(c.Query("mode"))
		if !mode.IsValid() {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown payment mode: "+c.Query("mode"))
			return
		}
		payments, err = ctrl.payments.ListByMode(mode)
	default:
		payments, err = ctrl.payments.ListAll()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, payments)
}

// GetByID handles GET /api/v1/payments/:id
func (ctrl *PaymentController) GetByID(c *gin.Context) {
	payment, err := ctrl.payments.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, payment)
}

// Refund handles POST /api/v1/payments/:id/refund
func (ctrl *PaymentController) Refund(c *gin.Context) {
	payment, err := ctrl.payments.Refund(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, payment)
}
