package routes

import (
	"github.com/gofiber/fiber/v2"

	"campus-connect/internal/controllers"
	"campus-connect/internal/middleware"
	"campus-connect/internal/services"
)

func SetupRoutesClub(app *fiber.App, svc *services.ClubService, jwtSecret string, admins middleware.AdminChecker) {
	clubs := app.Group("/clubs")

	clubs.Post("/", middleware.RequireAdmin(jwtSecret, admins), controllers.CreateClubHandler(svc))
	clubs.Get("/", controllers.ListClubsHandler(svc))

	// Static path before the dynamic club id routes.
	clubs.Get("/pending-requests", middleware.RequireAdmin(jwtSecret, admins), controllers.PendingRequestsHandler(svc))

	clubs.Post("/:club_id/join", middleware.RequireUser(jwtSecret), controllers.JoinClubHandler(svc))
	clubs.Post("/:club_id/leave", middleware.RequireUser(jwtSecret), controllers.LeaveClubHandler(svc))
	clubs.Post("/:club_id/approve", middleware.RequireAdmin(jwtSecret, admins), controllers.ApproveRequestHandler(svc))
	clubs.Post("/:club_id/reject", middleware.RequireAdmin(jwtSecret, admins), controllers.RejectRequestHandler(svc))
}
