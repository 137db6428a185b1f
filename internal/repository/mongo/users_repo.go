package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitlog/exercise-tracker/internal/apperr"
	"github.com/fitlog/exercise-tracker/internal/models"
	"github.com/fitlog/exercise-tracker/internal/repository"
)

type usersRepo struct{ c *mongo.Collection }

func NewUsers(db *mongo.Database) repository.Users {
	return &usersRepo{c: db.Collection("users")}
}

func (r *usersRepo) Create(ctx context.Context, username string) (models.User, error) {
	res, err := r.c.InsertOne(ctx, bson.M{"username": username})
	if err != nil {
		return models.User{}, apperr.Store("insert user", err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	return r.GetByID(ctx, id.Hex())
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, apperr.NotFound("user not found")
	}

	var u models.User
	err = r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, apperr.NotFound("user not found")
	}
	if err != nil {
		return models.User{}, apperr.Store("find user", err)
	}
	return u, nil
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Store("list users", err)
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Store("decode users", err)
	}
	return out, nil
}
