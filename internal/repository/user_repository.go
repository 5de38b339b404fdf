package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"campus-connect/database"
	"campus-connect/internal/models"
)

type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, user models.User) error {
	_, err := r.db.Collection(database.CollUsers).InsertOne(ctx, user)
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.Collection(database.CollUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

type AdminRepository struct {
	db *mongo.Database
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Insert(ctx context.Context, admin models.Admin) error {
	_, err := r.db.Collection(database.CollAdmins).InsertOne(ctx, admin)
	return err
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Collection(database.CollAdmins).FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// ExistsByID is the administrator predicate: does a document with this id
// exist in the admins collection.
func (r *AdminRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	count, err := r.db.Collection(database.CollAdmins).CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AdminRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	count, err := r.db.Collection(database.CollAdminCodes).CountDocuments(ctx, bson.M{"code": code})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AdminRepository) InsertCode(ctx context.Context, adminCode models.AdminCode) error {
	_, err := r.db.Collection(database.CollAdminCodes).InsertOne(ctx, adminCode)
	return err
}
