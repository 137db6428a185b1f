package repository

import (
	"context"
	"time"

	"github.com/fitlog/exercise-tracker/internal/models"
)

// Filter bounds an exercise query. Nil bounds are open; both bounds are
// inclusive when set. Limit <= 0 means unbounded.
type Filter struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}

type Users interface {
	Create(ctx context.Context, username string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type Exercises interface {
	Create(ctx context.Context, ex models.Exercise) (models.Exercise, error)
	ListByUser(ctx context.Context, userID string, f Filter) ([]models.Exercise, error)
	// CountByUser counts every exercise for the user, ignoring any filter.
	CountByUser(ctx context.Context, userID string) (int64, error)
}
