package controllers

import (
	"github.com/gofiber/fiber/v2"

	"campus-connect/dto"
	"campus-connect/internal/middleware"
	"campus-connect/internal/services"
)

// RegisterHandler godoc
// @Summary Register a new account
// @Description Create a student account, or an administrator account when a valid admin code is supplied
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body dto.RegisterRequest true "Register request"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/register [post]
func RegisterHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := body.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		id, err := svc.Register(c.Context(), body)
		if err != nil {
			return respondServiceError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
			Message: "registered successfully",
			ID:      id,
		})
	}
}

// LoginHandler godoc
// @Summary Log in
// @Description Exchange email and password for a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/login [post]
func LoginHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.Email == "" || body.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
		}

		resp, err := svc.Login(c.Context(), body)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(resp)
	}
}

// CreateAdminCodeHandler godoc
// @Summary Mint an admin registration code
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.AdminCode
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /auth/admin-codes [post]
func CreateAdminCodeHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		code, err := svc.CreateAdminCode(c.Context(), uid)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(code)
	}
}
