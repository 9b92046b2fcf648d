package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/services"
)

// ComplaintController exposes complaint filing and handling.
type ComplaintController struct {
	complaints *services.ComplaintService
}

// NewComplaintController creates a complaint controller.
func NewComplaintController(complaints *services.ComplaintService) *ComplaintController {
	return &ComplaintController{complaints: complaints}
}

// FileComplaintRequest represents the request body for filing a complaint
type FileComplaintRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// File handles POST /api/v1/complaints
func (ctrl *ComplaintController) File(c *gin.Context) {
	var req FileComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	complaint, err := ctrl.complaints.File(req.CustomerID, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, complaint)
}

// List handles GET /api/v1/complaints with optional customer_id and status filters
func (ctrl *ComplaintController) List(c *gin.Context) {
	var (
		complaints []models.Complaint
		err        error
	)
	switch {
	case c.Query("customer_id") != "":
		complaints, err = ctrl.complaints.ListByCustomer(c.Query("customer_id"))
	case c.Query("status") != "":
		status := models.ComplaintStatus(c.Query("status"))
		if !status.IsValid() {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown complaint status: "+c.Query("status"))
			return
		}
		complaints, err = ctrl.complaints.ListByStatus(status)
	default:
		complaints, err = ctrl.complaints.ListAll()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, complaints)
}

// GetByID handles GET /api/v1/complaints/:id
func (ctrl *ComplaintController) GetByID(c *gin.Context) {
	complaint, err := ctrl.complaints.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, complaint)
}

// MarkInProgress handles PATCH /api/v1/complaints/:id/progress
func (ctrl *ComplaintController) MarkInProgress(c *gin.Context) {
	complaint, err := ctrl.complaints.MarkInProgress(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, complaint)
}

// Resolve handles PATCH /api/v1/complaints/:id/resolve
func (ctrl *ComplaintController) Resolve(c *gin.Context) {
	complaint, err := ctrl.complaints.Resolve(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, complaint)
}

// Close handles DELETE /api/v1/complaints/:id. The record is kept; the
// complaint moves to closed.
func (ctrl *ComplaintController) Close(c *gin.Context) {
	complaint, err := ctrl.complaints.Close(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, complaint)
}
