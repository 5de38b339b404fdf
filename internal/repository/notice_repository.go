package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"campus-connect/database"
	"campus-connect/internal/models"
)

type NoticeRepository struct {
	db *mongo.Database
}

func NewNoticeRepository(db *mongo.Database) *NoticeRepository {
	return &NoticeRepository{db: db}
}

func (r *NoticeRepository) Insert(ctx context.Context, notice models.Notice) error {
	_, err := r.db.Collection(database.CollNotices).InsertOne(ctx, notice)
	return err
}

func (r *NoticeRepository) List(ctx context.Context) ([]models.Notice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.db.Collection(database.CollNotices).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notices []models.Notice
	if err := cursor.All(ctx, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}
