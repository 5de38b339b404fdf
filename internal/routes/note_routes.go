package routes

import (
	"github.com/gofiber/fiber/v2"

	"campus-connect/internal/controllers"
	"campus-connect/internal/middleware"
	"campus-connect/internal/services"
)

func SetupRoutesNote(app *fiber.App, svc *services.NoteService, jwtSecret string) {
	notes := app.Group("/notes")

	notes.Post("/", middleware.RequireUser(jwtSecret), controllers.UploadNoteHandler(svc))
	notes.Get("/", controllers.ListNotesHandler(svc))
	notes.Get("/:id", controllers.GetNoteHandler(svc))
}
