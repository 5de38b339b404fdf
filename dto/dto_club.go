package dto

import (
	"errors"

	"campus-connect/internal/models"
)

type ClubRequestDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Lead        string `json:"lead"`
	Image       string `json:"image,omitempty"`
}

func (c ClubRequestDTO) Validate() error {
	if c.Name == "" || c.Description == "" || c.Lead == "" {
		return errors.New("missing required fields")
	}
	return nil
}

// ClubJoinDTO carries the display name for a join request; the user id and
// email come from the authenticated principal.
type ClubJoinDTO struct {
	Name string `json:"name"`
}

// ClubActionDTO names the user an admin approves or rejects.
type ClubActionDTO struct {
	UserID string `json:"userId"`
}

// PendingClubDTO is one club annotated with its full pending queue, returned
// by the pending-requests listing.
type PendingClubDTO struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	Lead            string               `json:"lead"`
	Image           string               `json:"image"`
	Members         []string             `json:"members"`
	PendingRequests []models.JoinRequest `json:"pendingRequests"`
}
