package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("username", "alice"))
	assert.NotNil(t, Required("username", ""))
	assert.NotNil(t, Required("username", "   "))
}

func TestPositiveInt(t *testing.T) {
	n, ef := PositiveInt("duration", "30")
	require.Nil(t, ef)
	assert.Equal(t, 30, n)

	_, ef = PositiveInt("duration", "0")
	assert.NotNil(t, ef)
	_, ef = PositiveInt("duration", "-3")
	assert.NotNil(t, ef)
	_, ef = PositiveInt("duration", "thirty")
	assert.NotNil(t, ef)
}

func TestDate(t *testing.T) {
	d, ef := Date("from", "2024-01-15")
	require.Nil(t, ef)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), *d)

	d, ef = Date("from", "")
	assert.Nil(t, ef)
	assert.Nil(t, d)

	_, ef = Date("from", "15/01/2024")
	assert.NotNil(t, ef)
}

func TestErrsMessage(t *testing.T) {
	errs := Errs{
		{Field: "description", Msg: "required"},
		{Field: "duration", Msg: "must be a positive integer"},
	}
	assert.Equal(t, "description: required; duration: must be a positive integer", errs.Error())
}
