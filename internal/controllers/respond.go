package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"campus-connect/internal/repository"
	"campus-connect/internal/services"
)

// respondServiceError maps the domain error taxonomy onto HTTP statuses.
// Anything unrecognized is passed through to the app error handler, which
// logs it and answers with a generic 500 so store internals never leak.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, repository.ErrEventFull):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "event is full"})
	case errors.Is(err, services.ErrDeadlinePassed),
		errors.Is(err, services.ErrAlreadyRegistered),
		errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidAdminCode),
		errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return err
}
