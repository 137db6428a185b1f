package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitlog/exercise-tracker/internal/apperr"
	"github.com/fitlog/exercise-tracker/internal/models"
	"github.com/fitlog/exercise-tracker/internal/repository"
)

type exercisesRepo struct{ c *mongo.Collection }

func NewExercises(db *mongo.Database) repository.Exercises {
	return &exercisesRepo{c: db.Collection("exercises")}
}

func (r *exercisesRepo) Create(ctx context.Context, ex models.Exercise) (models.Exercise, error) {
	res, err := r.c.InsertOne(ctx, ex)
	if err != nil {
		return models.Exercise{}, apperr.Store("insert exercise", err)
	}
	ex.ID = res.InsertedID.(primitive.ObjectID)
	return ex, nil
}

// Ownership is matched on the embedded snapshot's id, so exercises stay
// attached to the user even though the snapshot is a value copy.
func (r *exercisesRepo) ListByUser(ctx context.Context, userID string, f repository.Filter) ([]models.Exercise, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}

	query := bson.M{"user._id": oid}
	if date := dateFilter(f); date != nil {
		query["date"] = date
	}

	opts := options.Find()
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cur, err := r.c.Find(ctx, query, opts)
	if err != nil {
		return nil, apperr.Store("find exercises", err)
	}
	defer cur.Close(ctx)

	var out []models.Exercise
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Store("decode exercises", err)
	}
	return out, nil
}

func (r *exercisesRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, apperr.NotFound("user not found")
	}
	n, err := r.c.CountDocuments(ctx, bson.M{"user._id": oid})
	if err != nil {
		return 0, apperr.Store("count exercises", err)
	}
	return n, nil
}

func dateFilter(f repository.Filter) bson.M {
	switch {
	case f.From != nil && f.To != nil:
		return bson.M{"$gte": *f.From, "$lte": *f.To}
	case f.From != nil:
		return bson.M{"$gte": *f.From}
	case f.To != nil:
		return bson.M{"$lte": *f.To}
	default:
		return nil
	}
}
