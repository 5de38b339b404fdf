package routes

import (
	"github.com/gofiber/fiber/v2"

	"campus-connect/internal/controllers"
	"campus-connect/internal/middleware"
	"campus-connect/internal/services"
)

func SetupRoutesAuth(app *fiber.App, svc *services.AuthService, jwtSecret string, admins middleware.AdminChecker) {
	auth := app.Group("/auth")

	auth.Post("/register", controllers.RegisterHandler(svc))
	auth.Post("/login", controllers.LoginHandler(svc))

	// Minting new admin codes is itself admin-only.
	auth.Post("/admin-codes", middleware.RequireAdmin(jwtSecret, admins), controllers.CreateAdminCodeHandler(svc))
}
