package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"campus-connect/dto"
	"campus-connect/internal/middleware"
	"campus-connect/internal/services"
)

// CreateEventHandler godoc
// @Summary Create a new event
// @Description Create an event with a fixed participant capacity and a registration deadline
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body dto.EventRequestDTO true "Event"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /events [post]
func CreateEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventRequestDTO
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

		event, err := svc.CreateEvent(c.Context(), body, uid)
		if err != nil {
			return respondServiceError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
			Message: "event created successfully",
			ID:      event.ID.Hex(),
		})
	}
}

// ListEventsHandler godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /events [get]
func ListEventsHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.ListEvents(c.Context())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(events)
	}
}

// JoinEventHandler godoc
// @Summary Join an event
// @Description Register the authenticated user for an event, subject to capacity and deadline
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param event_id path string true "Event ID"
// @Success 200 {object} dto.JoinEventResponse
// @Failure 400 {object} dto.ErrorResponse "full, past deadline, or already registered"
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{event_id}/join [post]
func JoinEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := bson.ObjectIDFromHex(c.Params("event_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event id"})
		}

		uid, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		count, err := svc.JoinEvent(c.Context(), eventID, uid)
		if err != nil {
			return respondServiceError(c, err)
		}

		return c.JSON(dto.JoinEventResponse{
			Message:                "successfully registered for event",
			RegisteredParticipants: count,
		})
	}
}

// ListRegistrationsHandler godoc
// @Summary List registrations for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param event_id path string true "Event ID"
// @Success 200 {array} models.EventRegistration
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{event_id}/registrations [get]
func ListRegistrationsHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := bson.ObjectIDFromHex(c.Params("event_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event id"})
		}

		registrations, err := svc.ListRegistrations(c.Context(), eventID)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(registrations)
	}
}
