package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string        `bson:"email" json:"email"`
	Password  string        `bson:"password" json:"-"`
	UserName  *string       `bson:"user_name" json:"user_name"`
	Phone     *string       `bson:"phone" json:"phone"`
	City      *string       `bson:"city" json:"city"`
	CreatedAt time.Time     `bson:"createdAt" json:"created_at"`
}

type Admin struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string        `bson:"email" json:"email"`
	Password    string        `bson:"password" json:"-"`
	AdminName   *string       `bson:"admin_name" json:"admin_name"`
	Phone       *string       `bson:"phone" json:"phone"`
	Designation *string       `bson:"designation" json:"designation"`
	CreatedAt   time.Time     `bson:"createdAt" json:"created_at"`
}

// AdminCode is a one-per-document invitation code required to register an
// administrator account.
type AdminCode struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Code      string        `bson:"code" json:"code"`
	CreatedAt time.Time     `bson:"createdAt" json:"created_at"`
	CreatedBy string        `bson:"createdBy,omitempty" json:"created_by,omitempty"`
}
