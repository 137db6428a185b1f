package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlog/exercise-tracker/internal/apperr"
	"github.com/fitlog/exercise-tracker/internal/repository/memory"
)

func TestUserServiceCreateAndList(t *testing.T) {
	svc := NewUserService(memory.NewUsers())
	ctx := context.Background()

	u, err := svc.Create(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.False(t, u.ID.IsZero())

	// created user is resolvable via List
	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, u.ID, users[0].ID)
}

func TestUserServiceCreateTrimsUsername(t *testing.T) {
	svc := NewUserService(memory.NewUsers())

	u, err := svc.Create(context.Background(), "  bob  ")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
}

func TestUserServiceCreateEmptyUsername(t *testing.T) {
	svc := NewUserService(memory.NewUsers())

	_, err := svc.Create(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestUserServiceStoreFailurePropagates(t *testing.T) {
	repo := memory.NewUsers()
	repo.FailWith = apperr.Store("insert user", errors.New("connection reset"))
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), "alice")
	require.Error(t, err)
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindStore, kind)
}

func TestUserServiceListIdempotent(t *testing.T) {
	svc := NewUserService(memory.NewUsers())
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob")
	require.NoError(t, err)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
