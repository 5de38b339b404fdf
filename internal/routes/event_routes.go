package routes

import (
	"github.com/gofiber/fiber/v2"

	"campus-connect/internal/controllers"
	"campus-connect/internal/middleware"
	"campus-connect/internal/services"
)

func SetupRoutesEvent(app *fiber.App, svc *services.EventService, jwtSecret string, admins middleware.AdminChecker) {
	events := app.Group("/events")

	events.Post("/", middleware.RequireAdmin(jwtSecret, admins), controllers.CreateEventHandler(svc))
	events.Get("/", controllers.ListEventsHandler(svc))

	events.Post("/:event_id/join", middleware.RequireUser(jwtSecret), controllers.JoinEventHandler(svc))
	events.Get("/:event_id/registrations", middleware.RequireAdmin(jwtSecret, admins), controllers.ListRegistrationsHandler(svc))
}
