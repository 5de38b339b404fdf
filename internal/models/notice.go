package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Notice struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Importance  string        `bson:"importance" json:"importance"` // low, medium, high
	Deadline    time.Time     `bson:"deadline" json:"deadline"`
	CreatedAt   time.Time     `bson:"createdAt" json:"created_at"`
}
