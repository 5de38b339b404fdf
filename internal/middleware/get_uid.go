package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// UIDFromLocals returns the user id the JWT middleware stored for this
// request.
func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return "", fiber.ErrUnauthorized
	}
	return uid, nil
}

// EmailFromLocals returns the principal's email, empty when the token did
// not carry one.
func EmailFromLocals(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}
