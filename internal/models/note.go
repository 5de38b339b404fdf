package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Note is an uploaded study material link, shared per branch and semester.
type Note struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string        `bson:"title" json:"title"`
	Link          string        `bson:"link" json:"link"`
	Branch        string        `bson:"branch" json:"branch"`
	Semester      string        `bson:"semester" json:"semester"`
	UploaderID    string        `bson:"uploaderId" json:"uploader_id"`
	UploaderEmail string        `bson:"uploaderEmail" json:"uploader_email"`
	CreatedAt     time.Time     `bson:"createdAt" json:"created_at"`
}
