package handlers

import (
	"net/http"
	"testing"

	"payroll_management/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "payroll_session" {
			return c
		}
	}
	return nil
}

func TestSessionLoginFlow(t *testing.T) {
	app, _ := SetupTest(t)

	resp, out := do(t, app, apiCall{
		method: "POST",
		path:   "/api/auth/login",
		body:   LoginRequest{Username: testUser, Password: testPassword},
	})
	require.Equal(t, 200, resp.StatusCode)
	assert.True(t, out.Success)
	data := dataMap(t, out)
	assert.Equal(t, testUser, data["username"])
	assert.NotEmpty(t, data["userId"])
	assert.NotEmpty(t, data["token"])

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "login should set the session cookie")

	resp, out = do(t, app, apiCall{method: "GET", path: "/api/auth/check-auth", cookie: cookie})
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, testUser, dataMap(t, out)["username"])

	resp, _ = do(t, app, apiCall{method: "GET", path: "/api/departments", cookie: cookie})
	assert.Equal(t, 200, resp.StatusCode)

	resp, out = do(t, app, apiCall{method: "POST", path: "/api/auth/logout", cookie: cookie})
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, out.Success)

	resp, out = do(t, app, apiCall{method: "GET", path: "/api/auth/check-auth", cookie: cookie})
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, types.ErrUnauthorized, out.Message)
}

func TestBearerToken(t *testing.T) {
	app, _ := SetupTest(t)
	token := login(t, app)

	resp, out := do(t, app, apiCall{method: "GET", path: "/api/auth/check-auth", token: token})
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, testUser, dataMap(t, out)["username"])

	resp, _ = do(t, app, apiCall{method: "GET", path: "/api/employees", token: token})
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = do(t, app, apiCall{method: "GET", path: "/api/employees", token: token + "x"})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLoginRejected(t *testing.T) {
	app, _ := SetupTest(t)

	tests := []struct {
		name    string
		body    LoginRequest
		status  int
		message string
	}{
		{"wrong password", LoginRequest{Username: testUser, Password: "nope"}, 401, types.ErrBadCredentials},
		{"unknown user", LoginRequest{Username: "ghost", Password: testPassword}, 401, types.ErrBadCredentials},
		{"missing password", LoginRequest{Username: testUser}, 400, types.ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, out := do(t, app, apiCall{method: "POST", path: "/api/auth/login", body: tt.body})
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.False(t, out.Success)
			assert.Equal(t, tt.message, out.Message)
			assert.Nil(t, sessionCookie(resp))
		})
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _ := SetupTest(t)

	for _, path := range []string{
		"/api/departments",
		"/api/employees",
		"/api/salaries",
		"/api/reports/payroll?month=2023-10",
		"/api/reports/departments",
		"/api/dashboard",
		"/api/audit",
	} {
		resp, out := do(t, app, apiCall{method: "GET", path: path})
		assert.Equal(t, 401, resp.StatusCode, path)
		assert.Equal(t, types.ErrUnauthorized, out.Message, path)
	}

	resp, _ := do(t, app, apiCall{method: "GET", path: "/api/auth/check-auth"})
	assert.Equal(t, 401, resp.StatusCode)
}

func TestHealthAndUnknownRoute(t *testing.T) {
	app, _ := SetupTest(t)

	resp, out := do(t, app, apiCall{method: "GET", path: "/health"})
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, out.Success)

	for _, path := range []string{"/api/nothing-here", "/nope", "/api/departments/IT/extra", "/api/reports/unknown"} {
		resp, out = do(t, app, apiCall{method: "GET", path: path})
		assert.Equal(t, 404, resp.StatusCode)
		assert.False(t, out.Success)
		assert.Equal(t, types.ErrRouteNotFound, out.Message)
	}
}
