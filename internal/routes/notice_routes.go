package routes

import (
	"github.com/gofiber/fiber/v2"

	"campus-connect/internal/controllers"
	"campus-connect/internal/middleware"
	"campus-connect/internal/services"
)

func SetupRoutesNotice(app *fiber.App, svc *services.NoticeService, jwtSecret string, admins middleware.AdminChecker) {
	notices := app.Group("/notices")

	notices.Post("/", middleware.RequireAdmin(jwtSecret, admins), controllers.CreateNoticeHandler(svc))
	notices.Get("/", controllers.ListNoticesHandler(svc))
}
