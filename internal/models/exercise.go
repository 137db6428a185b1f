package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the canonical date rendering used in API responses.
// Time-of-day is intentionally dropped.
const DateLayout = "Mon Jan 02 2006"

// Exercise embeds a value copy of the owning user as it was at creation
// time. There is no live join back to the users collection.
type Exercise struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Description string             `json:"description" bson:"description"`
	Duration    int                `json:"duration" bson:"duration"`
	Date        time.Time          `json:"date" bson:"date"`
	User        User               `json:"user" bson:"user"`
}

func (e *Exercise) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return errors.New("description required")
	}
	if e.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}

// DateString renders the exercise date in the canonical form.
func (e *Exercise) DateString() string {
	return e.Date.Format(DateLayout)
}
