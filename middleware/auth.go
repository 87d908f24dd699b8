package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"payroll_management/types"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionUserID   = "user_id"
	sessionUsername = "username"
)

// Identity is the authenticated caller, carried in the request context.
type Identity struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Auth resolves the caller from a bearer token or the session cookie.
type Auth struct {
	Sessions    *session.Store
	JWTSecret   []byte
	TokenExpiry time.Duration
}

func NewSessionStore(expiry time.Duration, secure bool) *session.Store {
	return session.New(session.Config{
		Expiration:     expiry,
		KeyLookup:      "cookie:payroll_session",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
}

func extractToken(c *fiber.Ctx) (string, error) {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" {
		return "", nil
	}

	parts := strings.Split(auth, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("invalid token format")
	}

	return parts[1], nil
}

func (a *Auth) IssueToken(id Identity) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  id.UserID,
		"username": id.Username,
		"exp":      time.Now().Add(a.TokenExpiry).Unix(),
	})
	return token.SignedString(a.JWTSecret)
}

func (a *Auth) parseToken(raw string) (Identity, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return a.JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, err
	}

	userID, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)
	if username == "" {
		return Identity{}, errors.New("token has no username")
	}
	return Identity{UserID: userID, Username: username}, nil
}

// StartSession stores the identity in a fresh session.
func (a *Auth) StartSession(c *fiber.Ctx, id Identity) error {
	sess, err := a.Sessions.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionUserID, id.UserID)
	sess.Set(sessionUsername, id.Username)
	return sess.Save()
}

func (a *Auth) EndSession(c *fiber.Ctx) error {
	sess, err := a.Sessions.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// Resolve returns the caller identity, if any. Bearer tokens win over cookies.
func (a *Auth) Resolve(c *fiber.Ctx) (Identity, bool) {
	raw, err := extractToken(c)
	if err != nil {
		return Identity{}, false
	}
	if raw != "" {
		id, err := a.parseToken(raw)
		if err != nil {
			return Identity{}, false
		}
		return id, true
	}

	sess, err := a.Sessions.Get(c)
	if err != nil {
		return Identity{}, false
	}
	username, _ := sess.Get(sessionUsername).(string)
	if username == "" {
		return Identity{}, false
	}
	userID, _ := sess.Get(sessionUserID).(string)
	return Identity{UserID: userID, Username: username}, true
}

func (a *Auth) RequireAuth(c *fiber.Ctx) error {
	id, ok := a.Resolve(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.Fail(types.ErrUnauthorized))
	}

	// Add identity to context for use in handlers
	c.SetUserContext(WithIdentity(c.UserContext(), id))

	return c.Next()
}
