package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"campus-connect/database"
	"campus-connect/internal/models"
)

type ClubRepository struct {
	db *mongo.Database
}

func NewClubRepository(db *mongo.Database) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) Insert(ctx context.Context, club models.Club) error {
	_, err := r.db.Collection(database.CollClubs).InsertOne(ctx, club)
	return err
}

func (r *ClubRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Club, error) {
	var club models.Club
	err := r.db.Collection(database.CollClubs).FindOne(ctx, bson.M{"_id": id}).Decode(&club)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &club, nil
}

func (r *ClubRepository) List(ctx context.Context) ([]models.Club, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.db.Collection(database.CollClubs).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clubs []models.Club
	if err := cursor.All(ctx, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// SetPendingRequests replaces the pending queue in one document write.
func (r *ClubRepository) SetPendingRequests(ctx context.Context, clubID bson.ObjectID, pending []models.JoinRequest) error {
	_, err := r.db.Collection(database.CollClubs).UpdateOne(ctx,
		bson.M{"_id": clubID},
		bson.M{"$set": bson.M{"pendingRequests": pending}},
	)
	return err
}

// ApproveRequest writes the filtered pending queue and adds the user to the
// member set in a single update. $addToSet keeps member uniqueness even if
// the user somehow already is one.
func (r *ClubRepository) ApproveRequest(ctx context.Context, clubID bson.ObjectID, userID string, pending []models.JoinRequest) error {
	_, err := r.db.Collection(database.CollClubs).UpdateOne(ctx,
		bson.M{"_id": clubID},
		bson.M{
			"$set":      bson.M{"pendingRequests": pending},
			"$addToSet": bson.M{"members": userID},
		},
	)
	return err
}

// RemoveMember pulls the user from the member set and writes the filtered
// pending queue together, so a leaving user disappears from both fields.
func (r *ClubRepository) RemoveMember(ctx context.Context, clubID bson.ObjectID, userID string, pending []models.JoinRequest) error {
	_, err := r.db.Collection(database.CollClubs).UpdateOne(ctx,
		bson.M{"_id": clubID},
		bson.M{
			"$pull": bson.M{"members": userID},
			"$set":  bson.M{"pendingRequests": pending},
		},
	)
	return err
}
