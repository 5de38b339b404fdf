package dto

import (
	"errors"
	"time"
)

type EventRequestDTO struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	MaxParticipants int       `json:"maxParticipants"`
	Deadline        time.Time `json:"deadline"`
	Date            time.Time `json:"date"`
	Time            string    `json:"time"`
	Venue           string    `json:"venue"`
	Image           *string   `json:"image,omitempty"`
}

func (e EventRequestDTO) Validate() error {
	if e.Title == "" || e.Description == "" || e.Venue == "" || e.Time == "" {
		return errors.New("missing required fields")
	}
	if e.MaxParticipants <= 0 {
		return errors.New("maxParticipants must be a positive integer")
	}
	if e.Deadline.IsZero() || e.Date.IsZero() {
		return errors.New("deadline and date are required")
	}
	return nil
}

// JoinEventResponse carries the post-join counter so the client can update
// the displayed capacity without a re-fetch.
type JoinEventResponse struct {
	Message                string `json:"message"`
	RegisteredParticipants int    `json:"registeredParticipants"`
}
