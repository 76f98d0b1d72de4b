package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/brightlog/internal/model"
)

func TestGoalsLoadWithoutRowIsEmpty(t *testing.T) {
	s := NewGoalsService(newMemGoalsRepo())

	goals, err := s.Load(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, model.Goals{}, goals)
}

func TestGoalsSaveOverwrites(t *testing.T) {
	repo := newMemGoalsRepo()
	s := NewGoalsService(repo)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "u-1", "alice", model.Goals{BodyMind: "sleep 7h", Career: "ship v1"}))
	require.NoError(t, s.Save(ctx, "u-1", "alice", model.Goals{Relationships: "call mom", Others: "paint"}))

	goals, err := s.Load(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, model.Goals{Relationships: "call mom", Others: "paint"}, goals)
	assert.Len(t, repo.records, 1)
	assert.Equal(t, "alice", repo.records["u-1"].Nickname)
}

func TestGoalsStoreErrorsAreWrapped(t *testing.T) {
	repo := newMemGoalsRepo()
	repo.err = errors.New("boom")
	s := NewGoalsService(repo)

	_, err := s.Load(context.Background(), "u-1")
	require.ErrorIs(t, err, repo.err)

	err = s.Save(context.Background(), "u-1", "alice", model.Goals{})
	require.ErrorIs(t, err, repo.err)
}
