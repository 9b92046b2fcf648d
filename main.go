package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bharatgas/agency-crm-api/config"
	"github.com/bharatgas/agency-crm-api/controllers"
	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/services"
	"github.com/bharatgas/agency-crm-api/utils"
)

func main() {
	// Basic logging
	log.Println("Starting Gas Agency CRM API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Booking{},
		&models.Payment{},
		&models.Complaint{},
		&models.Employee{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	ids := utils.NewIDGenerator()
	if err := seedIDCounters(db, ids); err != nil {
		log.Fatalf("Failed to seed ID counters: %v", err)
	}

	router := setupRouter(db, ids)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires the stores, controllers and routes onto a Gin engine.
func setupRouter(db *gorm.DB, ids *utils.IDGenerator) *gin.Engine {
	customerService := services.NewCustomerService(db, ids)
	bookingService := services.NewBookingService(db, ids)
	paymentService := services.NewPaymentService(db, ids)
	complaintService := services.NewComplaintService(db, ids)
	employeeService := services.NewEmployeeService(db, ids)
	dashboardService := services.NewDashboardService(db)

	customerController := controllers.NewCustomerController(customerService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService)
	complaintController := controllers.NewComplaintController(complaintService)
	employeeController := controllers.NewEmployeeController(employeeService)
	reportController := controllers.NewReportController(
		customerService, bookingService, paymentService, complaintService, dashboardService)

	router := gin.Default()
	router.Use(cors.Default())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		customers := v1.Group("/customers")
		{
			customers.POST("", customerController.Register)
			customers.GET("", customerController.List)
			customers.GET("/search", customerController.Search)
			customers.GET("/:id", customerController.GetByID)
			customers.PUT("/:id", customerController.Update)
			customers.DELETE("/:id", customerController.Deactivate)
		}

		bookings := v1.Group("/bookings")
		{
			bookings.POST("", bookingController.Create)
			bookings.GET("", bookingController.List)
			bookings.GET("/:id", bookingController.GetByID)
			bookings.PATCH("/:id/status", bookingController.UpdateStatus)
			bookings.DELETE("/:id", bookingController.Cancel)
		}
		v1.GET("/cylinders", bookingController.ListCylinders)

		payments := v1.Group("/payments")
		{
			payments.POST("", paymentController.Record)
			payments.GET("", paymentController.List)
			payments.GET("/:id", paymentController.GetByID)
			payments.POST("/:id/refund", paymentController.Refund)
		}

		complaints := v1.Group("/complaints")
		{
			complaints.POST("", complaintController.File)
			complaints.GET("", complaintController.List)
			complaints.GET("/:id", complaintController.GetByID)
			complaints.PATCH("/:id/progress", complaintController.MarkInProgress)
			complaints.PATCH("/:id/resolve", complaintController.Resolve)
			complaints.DELETE("/:id", complaintController.Close)
		}

		employees := v1.Group("/employees")
		{
			employees.POST("", employeeController.Register)
			employees.GET("", employeeController.List)
			employees.GET("/:id", employeeController.GetByID)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/customers", reportController.CustomerReport)
			reports.GET("/bookings", reportController.BookingReport)
			reports.GET("/payments", reportController.PaymentReport)
			reports.GET("/complaints", reportController.ComplaintReport)
		}
		v1.GET("/dashboard", reportController.Dashboard)
	}

	return router
}

// seedIDCounters advances each ID counter past the rows already in the
// database so reissued IDs never collide after a restart on a persistent
// database.
func seedIDCounters(db *gorm.DB, ids *utils.IDGenerator) error {
	tables := []struct {
		kind  utils.EntityKind
		model interface{}
	}{
		{utils.KindCustomer, &models.Customer{}},
		{utils.KindBooking, &models.Booking{}},
		{utils.KindPayment, &models.Payment{}},
		{utils.KindComplaint, &models.Complaint{}},
		{utils.KindEmployee, &models.Employee{}},
	}
	for _, t := range tables {
		var count int64
		if err := db.Model(t.model).Count(&count).Error; err != nil {
			return err
		}
		ids.Seed(t.kind, int(count))
	}
	return nil
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gas Agency CRM API is running",
	})
}
