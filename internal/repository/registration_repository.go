package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"campus-connect/database"
	"campus-connect/internal/models"
)

type RegistrationRepository struct {
	db *mongo.Database
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Exists reports whether a registration for (eventID, userID) already exists.
func (r *RegistrationRepository) Exists(ctx context.Context, eventID bson.ObjectID, userID string) (bool, error) {
	opts := options.Count().SetLimit(1)
	count, err := r.db.Collection(database.CollEventRegistrations).
		CountDocuments(ctx, bson.M{"eventId": eventID, "userId": userID}, opts)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RegisterAtomic commits a join: inside a single transaction it re-reads the
// event, re-verifies remaining capacity, increments registeredParticipants
// and inserts the registration document. The outside capacity pre-check is
// advisory only; this re-check is the authoritative one, so two callers
// racing for the last seat cannot both commit. A failed re-check surfaces as
// ErrEventFull and leaves nothing behind.
func (r *RegistrationRepository) RegisterAtomic(ctx context.Context, eventID bson.ObjectID, userID string) (int, error) {
	sess, err := r.db.Client().StartSession()
	if err != nil {
		return 0, err
	}
	defer sess.EndSession(ctx)

	events := r.db.Collection(database.CollEvents)
	registrations := r.db.Collection(database.CollEventRegistrations)

	result, err := sess.WithTransaction(ctx, func(tx context.Context) (interface{}, error) {
		var event models.Event
		if err := events.FindOne(tx, bson.M{"_id": eventID}).Decode(&event); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		if event.IsFull() {
			return nil, ErrEventFull
		}

		if _, err := events.UpdateOne(tx,
			bson.M{"_id": eventID},
			bson.M{"$inc": bson.M{"registeredParticipants": 1}},
		); err != nil {
			return nil, err
		}

		registration := models.EventRegistration{
			ID:           bson.NewObjectID(),
			EventID:      eventID,
			UserID:       userID,
			RegisteredAt: time.Now().UTC(),
		}
		if _, err := registrations.InsertOne(tx, registration); err != nil {
			return nil, err
		}

		return event.RegisteredParticipants + 1, nil
	})
	if err != nil {
		return 0, err
	}
	return result.(int), nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID bson.ObjectID) ([]models.EventRegistration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registeredAt", Value: 1}})
	cursor, err := r.db.Collection(database.CollEventRegistrations).Find(ctx, bson.M{"eventId": eventID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var registrations []models.EventRegistration
	if err := cursor.All(ctx, &registrations); err != nil {
		return nil, err
	}
	return registrations, nil
}
