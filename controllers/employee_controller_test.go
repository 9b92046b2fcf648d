package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEmployeeEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		body           RegisterEmployeeRequest
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Register delivery person successfully",
			body: RegisterEmployeeRequest{
				Name: "Suresh Yadav", Phone: "9123456780", Email: "suresh@bharatgas.in",
				Address: "Staff Quarters 2", Role: "delivery_person", Salary: 22000,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Fail with missing salary",
			body: RegisterEmployeeRequest{
				Name: "Suresh Yadav", Phone: "9123456780", Email: "suresh@bharatgas.in",
				Address: "Staff Quarters 2", Role: "delivery_person",
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "Fail with unknown role",
			body: RegisterEmployeeRequest{
				Name: "Suresh Yadav", Phone: "9123456780", Email: "suresh@bharatgas.in",
				Address: "Staff Quarters 2", Role: "janitor", Salary: 22000,
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)

			status, response := env.doJSON(t, "POST", "/api/v1/employees", tt.body)
			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedCode != "" {
				assert.Equal(t, false, response["success"])
				assert.Equal(t, tt.expectedCode, errorCode(response))
				return
			}
			assert.Equal(t, true, response["success"])
			assert.Equal(t, "BG-EMP-001", dataField(response, "employee_id"))
			assert.Equal(t, "delivery_person", dataField(response, "role"))
		})
	}
}

func TestListEmployeesEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	status, _ := env.doJSON(t, "POST", "/api/v1/employees", RegisterEmployeeRequest{
		Name: "Suresh Yadav", Phone: "9123456780", Email: "suresh@bharatgas.in",
		Address: "Staff Quarters 2", Role: "delivery_person", Salary: 22000,
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = env.doJSON(t, "POST", "/api/v1/employees", RegisterEmployeeRequest{
		Name: "Anita Desai", Phone: "9123456781", Email: "anita@bharatgas.in",
		Address: "Staff Quarters 5", Role: "customer_support", Salary: 25000,
	})
	require.Equal(t, http.StatusCreated, status)

	status, response := env.doJSON(t, "GET", "/api/v1/employees", nil)
	assert.Equal(t, http.StatusOK, status)
	data, ok := response["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)

	status, response = env.doJSON(t, "GET", "/api/v1/employees?role=customer_support", nil)
	assert.Equal(t, http.StatusOK, status)
	data, ok = response["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	support, ok := data[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Anita Desai", support["name"])

	status, response = env.doJSON(t, "GET", "/api/v1/employees?role=janitor", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(response))
}

func TestGetEmployeeEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	status, response := env.doJSON(t, "POST", "/api/v1/employees", RegisterEmployeeRequest{
		Name: "Suresh Yadav", Phone: "9123456780", Email: "suresh@bharatgas.in",
		Address: "Staff Quarters 2", Role: "admin", Salary: 30000,
	})
	require.Equal(t, http.StatusCreated, status)
	employeeID, _ := dataField(response, "employee_id").(string)
	require.NotEmpty(t, employeeID)

	status, response = env.doJSON(t, "GET", "/api/v1/employees/"+employeeID, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Suresh Yadav", dataField(response, "name"))

	status, response = env.doJSON(t, "GET", "/api/v1/employees/BG-EMP-999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(response))
}
