package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateStringCanonicalForm(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), "Mon Jan 01 2024"},
		{time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), "Thu Feb 29 2024"},
		// time-of-day must not leak into the rendering
		{time.Date(2024, time.December, 25, 23, 59, 59, 0, time.UTC), "Wed Dec 25 2024"},
	}
	for _, tc := range cases {
		ex := Exercise{Date: tc.date}
		assert.Equal(t, tc.want, ex.DateString())
	}
}

func TestUserValidate(t *testing.T) {
	u := User{Username: "alice"}
	assert.NoError(t, u.Validate())

	u = User{Username: "   "}
	assert.Error(t, u.Validate())
}

func TestExerciseValidate(t *testing.T) {
	ex := Exercise{Description: "run", Duration: 30}
	assert.NoError(t, ex.Validate())

	ex = Exercise{Description: "", Duration: 30}
	assert.Error(t, ex.Validate())

	ex = Exercise{Description: "run", Duration: 0}
	assert.Error(t, ex.Validate())

	ex = Exercise{Description: "run", Duration: -5}
	assert.Error(t, ex.Validate())
}
