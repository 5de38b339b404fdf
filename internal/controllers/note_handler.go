package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"campus-connect/dto"
	"campus-connect/internal/middleware"
	"campus-connect/internal/services"
)

// UploadNoteHandler godoc
// @Summary Upload a note link
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body dto.NoteRequestDTO true "Note"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /notes [post]
func UploadNoteHandler(svc *services.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.NoteRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := body.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		uid, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		note, err := svc.UploadNote(c.Context(), body, uid, middleware.EmailFromLocals(c))
		if err != nil {
			return respondServiceError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
			Message: "note uploaded",
			ID:      note.ID.Hex(),
		})
	}
}

// ListNotesHandler godoc
// @Summary List notes
// @Description List notes, optionally filtered by branch and semester
// @Tags notes
// @Produce json
// @Param branch query string false "Branch filter"
// @Param semester query string false "Semester filter"
// @Success 200 {array} models.Note
// @Router /notes [get]
func ListNotesHandler(svc *services.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := svc.ListNotes(c.Context(), c.Query("branch"), c.Query("semester"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(notes)
	}
}

// GetNoteHandler godoc
// @Summary Get note detail
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} models.Note
// @Failure 404 {object} dto.ErrorResponse
// @Router /notes/{id} [get]
func GetNoteHandler(svc *services.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid note id"})
		}

		note, err := svc.GetNote(c.Context(), id)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(note)
	}
}
