package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Event struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`

	// MaxParticipants is fixed at creation; RegisteredParticipants is
	// mutated only by the join transaction and never decremented.
	MaxParticipants        int `bson:"maxParticipants" json:"maxParticipants"`
	RegisteredParticipants int `bson:"registeredParticipants" json:"registeredParticipants"`

	Deadline time.Time `bson:"deadline" json:"deadline"`
	Date     time.Time `bson:"date" json:"date"`
	Time     string    `bson:"time" json:"time"`
	Venue    string    `bson:"venue" json:"venue"`
	Image    *string   `bson:"image" json:"image"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	CreatedBy string    `bson:"createdBy,omitempty" json:"created_by,omitempty"`
}

// IsFull reports whether the event has no remaining capacity.
func (e *Event) IsFull() bool {
	return e.RegisteredParticipants >= e.MaxParticipants
}

type EventRegistration struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID      bson.ObjectID `bson:"eventId" json:"event_id"`
	UserID       string        `bson:"userId" json:"user_id"`
	RegisteredAt time.Time     `bson:"registeredAt" json:"registered_at"`
}
