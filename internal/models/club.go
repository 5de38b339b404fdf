package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Club struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description"`
	Lead        string        `bson:"lead" json:"lead"`
	Image       string        `bson:"image" json:"image"`

	// Members holds user IDs with set semantics. PendingRequests holds at
	// most one entry per user; a user is never in both at once. Membership
	// state is derived from these two fields, there is no status document.
	Members         []string      `bson:"members" json:"members"`
	PendingRequests []JoinRequest `bson:"pendingRequests" json:"pendingRequests"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	CreatedBy string    `bson:"createdBy,omitempty" json:"created_by,omitempty"`
}

// JoinRequest is one entry in a club's pending queue.
type JoinRequest struct {
	UserID string `bson:"userId" json:"userId"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
}

// HasMember reports whether userID is already in the member set.
func (c *Club) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// WithoutPending returns the pending queue with any entry for userID removed.
func (c *Club) WithoutPending(userID string) []JoinRequest {
	filtered := make([]JoinRequest, 0, len(c.PendingRequests))
	for _, r := range c.PendingRequests {
		if r.UserID != userID {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
