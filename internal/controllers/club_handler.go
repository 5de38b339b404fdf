package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"campus-connect/dto"
	"campus-connect/internal/middleware"
	"campus-connect/internal/services"
)

// CreateClubHandler godoc
// @Summary Create a club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param club body dto.ClubRequestDTO true "Club"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /clubs [post]
func CreateClubHandler(svc *services.ClubService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ClubRequestDTO
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

		club, err := svc.CreateClub(c.Context(), body, uid)
		if err != nil {
			return respondServiceError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
			Message: "club created successfully",
			ID:      club.ID.Hex(),
		})
	}
}

// ListClubsHandler godoc
// @Summary List all clubs
// @Tags clubs
// @Produce json
// @Success 200 {array} models.Club
// @Router /clubs [get]
func ListClubsHandler(svc *services.ClubService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clubs, err := svc.ListClubs(c.Context())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(clubs)
	}
}

// JoinClubHandler godoc
// @Summary Request to join a club
// @Description Put the authenticated user in the club's pending queue; resubmission replaces the prior request
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param club_id path string true "Club ID"
// @Param join body dto.ClubJoinDTO true "Display name"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "already a member"
// @Failure 404 {object} dto.ErrorResponse
// @Router /clubs/{club_id}/join [post]
func JoinClubHandler(svc *services.ClubService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clubID, err := bson.ObjectIDFromHex(c.Params("club_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid club id"})
		}

		var body dto.ClubJoinDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		uid, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}
		email := middleware.EmailFromLocals(c)
		if body.Name == "" || email == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required fields"})
		}

		if err := svc.RequestJoin(c.Context(), clubID, uid, body.Name, email); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "join request sent"})
	}
}

// LeaveClubHandler godoc
// @Summary Leave a club
// @Description Remove the authenticated user from members and from the pending queue
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param club_id path string true "Club ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clubs/{club_id}/leave [post]
func LeaveClubHandler(svc *services.ClubService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clubID, err := bson.ObjectIDFromHex(c.Params("club_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid club id"})
		}

		uid, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		if err := svc.Leave(c.Context(), clubID, uid); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "left club"})
	}
}

// PendingRequestsHandler godoc
// @Summary List clubs with pending join requests
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.PendingClubDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /clubs/pending-requests [get]
func PendingRequestsHandler(svc *services.ClubService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clubs, err := svc.ListPendingRequests(c.Context())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(clubs)
	}
}

// ApproveRequestHandler godoc
// @Summary Approve a club join request
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param club_id path string true "Club ID"
// @Param action body dto.ClubActionDTO true "User to approve"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "missing userId"
// @Failure 404 {object} dto.ErrorResponse
// @Router /clubs/{club_id}/approve [post]
func ApproveRequestHandler(svc *services.ClubService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clubID, userID, err := clubAction(c)
		if err != nil {
			return err
		}

		if err := svc.Approve(c.Context(), clubID, userID); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "request approved"})
	}
}

// RejectRequestHandler godoc
// @Summary Reject a club join request
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param club_id path string true "Club ID"
// @Param action body dto.ClubActionDTO true "User to reject"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "missing userId"
// @Failure 404 {object} dto.ErrorResponse
// @Router /clubs/{club_id}/reject [post]
func RejectRequestHandler(svc *services.ClubService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clubID, userID, err := clubAction(c)
		if err != nil {
			return err
		}

		if err := svc.Reject(c.Context(), clubID, userID); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "request rejected"})
	}
}

// clubAction parses the club id path parameter and the target userId shared
// by approve and reject.
func clubAction(c *fiber.Ctx) (bson.ObjectID, string, error) {
	clubID, err := bson.ObjectIDFromHex(c.Params("club_id"))
	if err != nil {
		return bson.NilObjectID, "", fiber.NewError(fiber.StatusBadRequest, "invalid club id")
	}

	var body dto.ClubActionDTO
	if err := c.BodyParser(&body); err != nil || body.UserID == "" {
		return bson.NilObjectID, "", fiber.NewError(fiber.StatusBadRequest, "userId required")
	}
	return clubID, body.UserID, nil
}
