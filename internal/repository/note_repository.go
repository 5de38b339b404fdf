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

type NoteRepository struct {
	db *mongo.Database
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Insert(ctx context.Context, note models.Note) error {
	_, err := r.db.Collection(database.CollNotes).InsertOne(ctx, note)
	return err
}

// List returns notes newest first, optionally narrowed by branch and
// semester equality filters.
func (r *NoteRepository) List(ctx context.Context, branch, semester string) ([]models.Note, error) {
	filter := bson.M{}
	if branch != "" {
		filter["branch"] = branch
	}
	if semester != "" {
		filter["semester"] = semester
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.db.Collection(database.CollNotes).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []models.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Note, error) {
	var note models.Note
	err := r.db.Collection(database.CollNotes).FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}
