package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type MyClaims struct {
	UID   string `json:"uid,omitempty"`
	Email string `json:"email,omitempty"`
	Admin bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// AdminChecker is the administrator predicate: does a document with this id
// exist in the admins collection.
type AdminChecker interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

func parseBearer(c *fiber.Ctx, secret string) (*MyClaims, error) {
	auth := c.Get("Authorization")
	if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "no token provided")
	}

	tokenStr := strings.TrimSpace(auth[7:])
	var claims MyClaims

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	if claims.UID == "" {
		claims.UID = claims.Subject
	}
	if claims.UID == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "missing uid")
	}
	return &claims, nil
}

// RequireUser rejects requests without a valid bearer token and stores the
// authenticated principal in Locals.
func RequireUser(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearer(c, secret)
		if err != nil {
			return err
		}
		c.Locals("user_id", claims.UID)
		c.Locals("email", claims.Email)
		c.Locals("is_admin", claims.Admin)
		return c.Next()
	}
}

// RequireAdmin additionally verifies the principal against the admins
// collection. A valid token for a non-admin yields 403.
func RequireAdmin(secret string, admins AdminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearer(c, secret)
		if err != nil {
			return err
		}

		ok, err := admins.ExistsByID(c.Context(), claims.UID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "authorization check failed")
		}
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "not authorized")
		}

		c.Locals("user_id", claims.UID)
		c.Locals("email", claims.Email)
		c.Locals("is_admin", true)
		return c.Next()
	}
}
