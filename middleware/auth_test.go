package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth() *Auth {
	return &Auth{
		Sessions:    NewSessionStore(time.Hour, false),
		JWTSecret:   []byte("test-secret"),
		TokenExpiry: time.Hour,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	a := newTestAuth()
	raw, err := a.IssueToken(Identity{UserID: "u-1", Username: "admin"})
	require.NoError(t, err)

	id, err := a.parseToken(raw)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "u-1", Username: "admin"}, id)
}

func TestParseTokenRejects(t *testing.T) {
	a := newTestAuth()

	expired, err := (&Auth{JWTSecret: a.JWTSecret, TokenExpiry: -time.Minute}).
		IssueToken(Identity{UserID: "u-1", Username: "admin"})
	require.NoError(t, err)

	otherKey, err := (&Auth{JWTSecret: []byte("other"), TokenExpiry: time.Hour}).
		IssueToken(Identity{UserID: "u-1", Username: "admin"})
	require.NoError(t, err)

	noName, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(a.JWTSecret)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "admin",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"expired":     expired,
		"other key":   otherKey,
		"no username": noName,
		"alg none":    unsigned,
		"garbage":     "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := a.parseToken(raw)
			assert.Error(t, err)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	a := newTestAuth()
	app := fiber.New()
	app.Get("/me", a.RequireAuth, func(c *fiber.Ctx) error {
		id, ok := IdentityFrom(c.UserContext())
		if !ok {
			return c.SendStatus(500)
		}
		return c.SendString(id.Username)
	})

	token, err := a.IssueToken(Identity{UserID: "u-1", Username: "admin"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"bearer token", "Bearer " + token, 200},
		{"no header", "", 401},
		{"wrong scheme", "Basic " + token, 401},
		{"bad token", "Bearer abc", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestSessionIdentity(t *testing.T) {
	a := newTestAuth()
	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		return a.StartSession(c, Identity{UserID: "u-1", Username: "admin"})
	})
	app.Get("/me", a.RequireAuth, func(c *fiber.Ctx) error {
		id, _ := IdentityFrom(c.UserContext())
		return c.SendString(id.Username)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == "payroll_session" {
			cookie = c.Value
		}
	}
	require.NotEmpty(t, cookie)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Cookie", "payroll_session="+cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
