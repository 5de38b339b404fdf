package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"campus-connect/database"
)

// EnsureRegistrationIndexes creates the compound index used by the duplicate
// registration lookup on every event join. The index is deliberately not
// unique: the duplicate check is a service-level precondition and a
// concurrent same-user join is an accepted race (see DESIGN.md).
func EnsureRegistrationIndexes(db *mongo.Database) error {
	_, err := db.Collection(database.CollEventRegistrations).Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "eventId", Value: 1},
				{Key: "userId", Value: 1},
			},
			Options: options.Index().SetName("event_user"),
		},
	)
	return err
}

// EnsureAuthIndexes backs the email lookups done at register and login time.
func EnsureAuthIndexes(db *mongo.Database) error {
	for _, coll := range []string{database.CollUsers, database.CollAdmins} {
		_, err := db.Collection(coll).Indexes().CreateOne(
			context.Background(),
			mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}
