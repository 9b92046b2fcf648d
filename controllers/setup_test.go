package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/services"
	"github.com/bharatgas/agency-crm-api/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Booking{},
		&models.Payment{},
		&models.Complaint{},
		&models.Employee{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// testEnv bundles a router with the services behind it so tests can both
// drive the HTTP surface and inspect store state directly.
type testEnv struct {
	router     *gin.Engine
	customers  *services.CustomerService
	bookings   *services.BookingService
	payments   *services.PaymentService
	complaints *services.ComplaintService
	employees  *services.EmployeeService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	ids := utils.NewIDGenerator()
	env := &testEnv{
		customers:  services.NewCustomerService(db, ids),
		bookings:   services.NewBookingService(db, ids),
		payments:   services.NewPaymentService(db, ids),
		complaints: services.NewComplaintService(db, ids),
		employees:  services.NewEmployeeService(db, ids),
	}

	customerController := NewCustomerController(env.customers)
	bookingController := NewBookingController(env.bookings)
	paymentController := NewPaymentController(env.payments)
	complaintController := NewComplaintController(env.complaints)
	employeeController := NewEmployeeController(env.employees)
	reportController := NewReportController(
		env.customers, env.bookings, env.payments, env.complaints,
		services.NewDashboardService(db))

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.POST("/customers", customerController.Register)
		v1.GET("/customers", customerController.List)
		v1.GET("/customers/search", customerController.Search)
		v1.GET("/customers/:id", customerController.GetByID)
		v1.PUT("/customers/:id", customerController.Update)
		v1.DELETE("/customers/:id", customerController.Deactivate)

		v1.POST("/bookings", bookingController.Create)
		v1.GET("/bookings", bookingController.List)
		v1.GET("/bookings/:id", bookingController.GetByID)
		v1.PATCH("/bookings/:id/status", bookingController.UpdateStatus)
		v1.DELETE("/bookings/:id", bookingController.Cancel)
		v1.GET("/cylinders", bookingController.ListCylinders)

		v1.POST("/payments", paymentController.Record)
		v1.GET("/payments", paymentController.List)
		v1.GET("/payments/:id", paymentController.GetByID)
		v1.POST("/payments/:id/refund", paymentController.Refund)

		v1.POST("/complaints", complaintController.File)
		v1.GET("/complaints", complaintController.List)
		v1.GET("/complaints/:id", complaintController.GetByID)
		v1.PATCH("/complaints/:id/progress", complaintController.MarkInProgress)
		v1.PATCH("/complaints/:id/resolve", complaintController.Resolve)
		v1.DELETE("/complaints/:id", complaintController.Close)

		v1.POST("/employees", employeeController.Register)
		v1.GET("/employees", employeeController.List)
		v1.GET("/employees/:id", employeeController.GetByID)

		v1.GET("/reports/customers", reportController.CustomerReport)
		v1.GET("/reports/bookings", reportController.BookingReport)
		v1.GET("/reports/payments", reportController.PaymentReport)
		v1.GET("/reports/complaints", reportController.ComplaintReport)
		v1.GET("/dashboard", reportController.Dashboard)
	}
	env.router = router
	return env
}

// doJSON performs a JSON request against the test router and decodes the
// response envelope.
func (env *testEnv) doJSON(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response should be valid JSON, got %q: %v", w.Body.String(), err)
	}
	return w.Code, response
}

// errorCode digs the error code out of a response envelope.
func errorCode(response map[string]interface{}) string {
	errObj, ok := response["error"].(map[string]interface{})
	if !ok {
		return ""
	}
	code, _ := errObj["code"].(string)
	return code
}

// dataField digs a field out of the data object of a response envelope.
func dataField(response map[string]interface{}, field string) interface{} {
	data, ok := response["data"].(map[string]interface{})
	if !ok {
		return nil
	}
	return data[field]
}
