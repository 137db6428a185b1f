package services

import (
	"context"
	"strings"

	"github.com/fitlog/exercise-tracker/internal/apperr"
	"github.com/fitlog/exercise-tracker/internal/metrics"
	"github.com/fitlog/exercise-tracker/internal/models"
	repo "github.com/fitlog/exercise-tracker/internal/repository"
)

type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

func (s *UserService) Create(ctx context.Context, username string) (models.User, error) {
	u := models.User{Username: strings.TrimSpace(username)}
	if err := u.Validate(); err != nil {
		return models.User{}, apperr.Validation(err.Error())
	}
	created, err := s.r.Create(ctx, u.Username)
	if err != nil {
		return models.User{}, err
	}
	metrics.UsersCreatedTotal.Inc()
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) { return s.r.List(ctx) }
