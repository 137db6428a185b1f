package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	repo "github.com/fitlog/exercise-tracker/internal/repository"
)

type Repositories struct {
	Users     repo.Users
	Exercises repo.Exercises
}

func NewRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users:     NewUsers(db),
		Exercises: NewExercises(db),
	}
}
