package services

import (
	"context"
	"time"

	"github.com/fitlog/exercise-tracker/internal/apperr"
	"github.com/fitlog/exercise-tracker/internal/metrics"
	"github.com/fitlog/exercise-tracker/internal/models"
	repo "github.com/fitlog/exercise-tracker/internal/repository"
)

type ExerciseService struct {
	ex    repo.Exercises
	users repo.Users
	now   func() time.Time
}

func NewExerciseService(ex repo.Exercises, users repo.Users) *ExerciseService {
	return &ExerciseService{ex: ex, users: users, now: time.Now}
}

// Log is what a GET on a user's exercise log resolves to. Total is the
// count of every exercise for the user; it deliberately ignores the date
// filter, so a filtered page still reports the unfiltered total.
type Log struct {
	User      models.User
	Exercises []models.Exercise
	Total     int64
}

// Create resolves the owning user first and refuses to log an exercise
// against a user that does not exist. The resolved user is embedded as a
// value copy. A missing date defaults to the current time.
func (s *ExerciseService) Create(ctx context.Context, userID, description string, duration int, date *time.Time) (models.Exercise, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.Exercise{}, err
	}

	when := s.now()
	if date != nil {
		when = *date
	}
	ex := models.Exercise{
		Description: description,
		Duration:    duration,
		Date:        when,
		User:        u,
	}
	if err := ex.Validate(); err != nil {
		return models.Exercise{}, apperr.Validation(err.Error())
	}

	created, err := s.ex.Create(ctx, ex)
	if err != nil {
		return models.Exercise{}, err
	}
	metrics.ExercisesLoggedTotal.Inc()
	return created, nil
}

// List returns the user's exercise log. From and to are inclusive bounds
// on the exercise date; either may be nil. Limit caps the returned rows
// when positive.
func (s *ExerciseService) List(ctx context.Context, userID string, from, to *time.Time, limit int64) (Log, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Log{}, err
	}

	total, err := s.ex.CountByUser(ctx, userID)
	if err != nil {
		return Log{}, err
	}

	exercises, err := s.ex.ListByUser(ctx, userID, repo.Filter{From: from, To: to, Limit: limit})
	if err != nil {
		return Log{}, err
	}

	return Log{User: u, Exercises: exercises, Total: total}, nil
}
