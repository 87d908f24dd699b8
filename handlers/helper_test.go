package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payroll_management/database"
	"payroll_management/middleware"
	"payroll_management/repository"
	"payroll_management/services"
	"payroll_management/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

const (
	testUser     = "admin"
	testPassword = "secret123"
)

// SetupTest builds a fresh app over its own in-memory database with one user.
func SetupTest(t *testing.T) (*fiber.App, *repository.Store) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.OpenWith(sqlite.Open(dsn))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	store := repository.NewStore(db)
	_, err = services.SetPassword(context.Background(), store.Users, testUser, testPassword)
	require.NoError(t, err)

	auth := &middleware.Auth{
		Sessions:    middleware.NewSessionStore(time.Hour, false),
		JWTSecret:   []byte("test-secret"),
		TokenExpiry: time.Hour,
	}
	InitHandlers(store, services.NewPayrollService(store), auth)

	return NewApp("http://localhost:5173"), store
}

type apiCall struct {
	method string
	path   string
	body   interface{}
	token  string
	cookie *http.Cookie
}

func do(t *testing.T, app *fiber.App, call apiCall) (*http.Response, types.APIResponse) {
	t.Helper()

	var body io.Reader
	if call.body != nil {
		raw, err := json.Marshal(call.body)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(call.method, call.path, body)
	if call.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if call.token != "" {
		req.Header.Set("Authorization", "Bearer "+call.token)
	}
	if call.cookie != nil {
		req.AddCookie(call.cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out types.APIResponse
	if resp.Header.Get("Content-Type") == fiber.MIMEApplicationJSON {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

// login returns a bearer token for the seeded user.
func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, out := do(t, app, apiCall{
		method: "POST",
		path:   "/api/auth/login",
		body:   LoginRequest{Username: testUser, Password: testPassword},
	})
	require.Equal(t, 200, resp.StatusCode)
	data := out.Data.(map[string]interface{})
	return data["token"].(string)
}

func dataMap(t *testing.T, out types.APIResponse) map[string]interface{} {
	t.Helper()
	m, ok := out.Data.(map[string]interface{})
	require.True(t, ok, "data is %T", out.Data)
	return m
}

func dataList(t *testing.T, out types.APIResponse) []interface{} {
	t.Helper()
	l, ok := out.Data.([]interface{})
	require.True(t, ok, "data is %T", out.Data)
	return l
}

// money reads a decimal field, which is encoded as a JSON string.
func money(t *testing.T, m map[string]interface{}, key string) decimal.Decimal {
	t.Helper()
	s, ok := m[key].(string)
	require.True(t, ok, "%s is %T", key, m[key])
	return decimal.RequireFromString(s)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedPayroll creates IT and HR with one employee each and their 2023-10 salaries.
func seedPayroll(t *testing.T, app *fiber.App, token string) {
	t.Helper()
	for _, dept := range []fiber.Map{
		{"departmentCode": "IT", "departmentName": "Information Technology"},
		{"departmentCode": "HR", "departmentName": "Human Resources"},
	} {
		resp, _ := do(t, app, apiCall{method: "POST", path: "/api/departments", body: dept, token: token})
		require.Equal(t, 201, resp.StatusCode)
	}
	for _, emp := range []fiber.Map{
		{"employeeNumber": "E001", "firstName": "Alice", "lastName": "Mugisha", "position": "Developer", "departmentCode": "IT", "hiredDate": "2021-03-01"},
		{"employeeNumber": "E002", "firstName": "Bob", "lastName": "Uwimana", "position": "Recruiter", "departmentCode": "HR"},
	} {
		resp, _ := do(t, app, apiCall{method: "POST", path: "/api/employees", body: emp, token: token})
		require.Equal(t, 201, resp.StatusCode)
	}
	for _, s := range []fiber.Map{
		{"employeeNumber": "E001", "grossSalary": 5000, "totalDeduction": 500, "month": "2023-10"},
		{"employeeNumber": "E002", "grossSalary": 5500, "totalDeduction": 500, "month": "2023-10"},
	} {
		resp, _ := do(t, app, apiCall{method: "POST", path: "/api/salaries", body: s, token: token})
		require.Equal(t, 201, resp.StatusCode)
	}
}
