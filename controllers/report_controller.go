package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharatgas/agency-crm-api/services"
)

// ReportController exposes per-store reports and the dashboard summary.
type ReportController struct {
	customers  *services.CustomerService
	bookings   *services.BookingService
	payments   *services.PaymentService
	complaints *services.ComplaintService
	dashboard  *services.DashboardService
}

// NewReportController creates a report controller over all four stores.
func NewReportController(
	customers *services.CustomerService,
	bookings *services.BookingService,
	payments *services.PaymentService,
	complaints *services.ComplaintService,
	dashboard *services.DashboardService,
) *ReportController {
	return &ReportController{
		customers:  customers,
		bookings:   bookings,
		payments:   payments,
		complaints: complaints,
		dashboard:  dashboard,
	}
}

// CustomerReport handles GET /api/v1/reports/customers
func (ctrl *ReportController) CustomerReport(c *gin.Context) {
	report, err := ctrl.customers.Report()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, report)
}

// BookingReport handles GET /api/v1/reports/bookings
func (ctrl *ReportController) BookingReport(c *gin.Context) {
	report, err := ctrl.bookings.Report()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, report)
}

// PaymentReport handles GET /api/v1/reports/payments
func (ctrl *ReportController) PaymentReport(c *gin.Context) {
	report, err := ctrl.payments.Report()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, report)
}

// ComplaintReport handles GET /api/v1/reports/complaints
func (ctrl *ReportController) ComplaintReport(c *gin.Context) {
	report, err := ctrl.complaints.Report()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, report)
}

// Dashboard handles GET /api/v1/dashboard
func (ctrl *ReportController) Dashboard(c *gin.Context) {
	summary, err := ctrl.dashboard.Summary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, summary)
}
