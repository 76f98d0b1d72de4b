package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/brightlog/internal/model"
	"github.com/templui/brightlog/internal/repository"
	"github.com/templui/brightlog/internal/validation"
)

func TestResolveCreatesOnceAndReturnsSameIdentifier(t *testing.T) {
	repo := newMemProfileRepo()
	s := NewIdentityService(repo)
	ctx := context.Background()

	first, err := s.Resolve(ctx, "alice")
	require.NoError(t, err)
	_, err = uuid.Parse(first.UserUUID)
	require.NoError(t, err)

	second, err := s.Resolve(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.UserUUID, second.UserUUID)
	assert.Equal(t, 1, repo.count())

	bob, err := s.Resolve(ctx, "bob")
	require.NoError(t, err)
	assert.NotEqual(t, first.UserUUID, bob.UserUUID)
}

func TestResolveTrimsAndRejectsEmpty(t *testing.T) {
	s := NewIdentityService(newMemProfileRepo())
	ctx := context.Background()

	_, err := s.Resolve(ctx, "   ")
	assert.ErrorIs(t, err, validation.ErrNicknameRequired)

	a, err := s.Resolve(ctx, " alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice", a.Nickname)
	b, err := s.Resolve(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, a.UserUUID, b.UserUUID)
}

func TestResolveLosingRaceReturnsWinner(t *testing.T) {
	repo := newMemProfileRepo()
	s := NewIdentityService(repo)
	winner := &model.UserProfile{UserUUID: uuid.New().String(), Nickname: "alice"}
	repo.beforeCreate = func() {
		repo.beforeCreate = nil
		_, _ = repo.Create(context.Background(), winner)
	}

	got, err := s.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, winner.UserUUID, got.UserUUID)
	assert.Equal(t, 1, repo.count())
}

func TestResolvePropagatesStoreErrors(t *testing.T) {
	repo := newMemProfileRepo()
	repo.lookupErr = errors.New("store unavailable")
	s := NewIdentityService(repo)

	_, err := s.Resolve(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
	assert.Equal(t, 0, repo.count())
}

func TestByUUID(t *testing.T) {
	repo := newMemProfileRepo()
	s := NewIdentityService(repo)
	ctx := context.Background()

	alice, err := s.Resolve(ctx, "alice")
	require.NoError(t, err)

	got, err := s.ByUUID(ctx, alice.UserUUID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Nickname)

	_, err = s.ByUUID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	_, err = s.ByUUID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}
