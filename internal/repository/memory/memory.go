// Package memory holds in-memory repository implementations used in
// tests and local development. They mirror the document store's
// semantics: store-assigned ids, inclusive date bounds, and counts that
// ignore the date filter.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitlog/exercise-tracker/internal/apperr"
	"github.com/fitlog/exercise-tracker/internal/models"
	"github.com/fitlog/exercise-tracker/internal/repository"
)

type UsersRepo struct {
	mu    sync.RWMutex
	users []models.User

	// FailWith, when set, is returned by every call. Lets tests drive
	// the store-failure paths.
	FailWith error
}

func NewUsers() *UsersRepo { return &UsersRepo{} }

func (r *UsersRepo) Create(ctx context.Context, username string) (models.User, error) {
	if r.FailWith != nil {
		return models.User{}, r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u := models.User{ID: primitive.NewObjectID(), Username: username}
	r.users = append(r.users, u)
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	if r.FailWith != nil {
		return models.User{}, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return models.User{}, apperr.NotFound("user not found")
}

func (r *UsersRepo) List(ctx context.Context) ([]models.User, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

type ExercisesRepo struct {
	mu        sync.RWMutex
	exercises []models.Exercise

	FailWith error
}

func NewExercises() *ExercisesRepo { return &ExercisesRepo{} }

func (r *ExercisesRepo) Create(ctx context.Context, ex models.Exercise) (models.Exercise, error) {
	if r.FailWith != nil {
		return models.Exercise{}, r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ex.ID = primitive.NewObjectID()
	r.exercises = append(r.exercises, ex)
	return ex, nil
}

func (r *ExercisesRepo) ListByUser(ctx context.Context, userID string, f repository.Filter) ([]models.Exercise, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Exercise
	for _, ex := range r.exercises {
		if ex.User.ID.Hex() != userID {
			continue
		}
		if f.From != nil && ex.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && ex.Date.After(*f.To) {
			continue
		}
		out = append(out, ex)
		if f.Limit > 0 && int64(len(out)) == f.Limit {
			break
		}
	}
	return out, nil
}

func (r *ExercisesRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	if r.FailWith != nil {
		return 0, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, ex := range r.exercises {
		if ex.User.ID.Hex() == userID {
			n++
		}
	}
	return n, nil
}
