package users

import (
	"context"
	"filmorate/proj/internal/domain/fields"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/lib/validator"
	"filmorate/proj/internal/storage/memory"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *UserService {
	store := memory.New(true)
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), validator.New(), store.User, store.Friend)
}

func newUser(login string) *models.User {
	return &models.User{
		Email:    login + "@mail.ru",
		Login:    login,
		Name:     "",
		Birthday: fields.NewDate(1946, time.August, 20),
	}
}

func mustCreate(t *testing.T, s *UserService, login string) *models.User {
	t.Helper()
	user, err := s.Create(context.Background(), newUser(login))
	require.NoError(t, err)
	return user
}

func ids(users []models.User) []int64 {
	out := make([]int64, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestCreate(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	t.Run("blank name defaults to login", func(t *testing.T) {
		user := mustCreate(t, s, "dolore")
		assert.Equal(t, "dolore", user.Name)
		got, err := s.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "dolore", got.Name)
	})
	t.Run("duplicate email", func(t *testing.T) {
		user := newUser("other")
		user.Email = "dolore@mail.ru"
		_, err := s.Create(ctx, user)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
	t.Run("birthday in future", func(t *testing.T) {
		user := newUser("future")
		user.Birthday = fields.DateOf(time.Now().AddDate(0, 0, 1))
		_, err := s.Create(ctx, user)
		var vErr *validator.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestUpdate(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	user := mustCreate(t, s, "before")

	t.Run("ok", func(t *testing.T) {
		upd := newUser("after")
		upd.ID = user.ID
		updated, err := s.Update(ctx, upd)
		require.NoError(t, err)
		assert.Equal(t, "after", updated.Login)
		assert.Equal(t, "after", updated.Name)
	})
	t.Run("unknown", func(t *testing.T) {
		upd := newUser("ghost")
		upd.ID = 999
		_, err := s.Update(ctx, upd)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
	t.Run("missing id", func(t *testing.T) {
		_, err := s.Update(ctx, newUser("noid"))
		assert.ErrorIs(t, err, ErrMissingID)
	})
}

func TestFriends(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	a := mustCreate(t, s, "a")
	b := mustCreate(t, s, "b")
	c := mustCreate(t, s, "c")

	require.NoError(t, s.AddFriend(ctx, a.ID, b.ID))
	require.NoError(t, s.AddFriend(ctx, a.ID, b.ID))

	friends, err := s.Friends(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, ids(friends))

	friends, err = s.Friends(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, friends, "friendship is one-directional")

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, got.Friends)

	assert.ErrorIs(t, s.AddFriend(ctx, a.ID, a.ID), ErrSelfFriendship)
	assert.ErrorIs(t, s.AddFriend(ctx, a.ID, 999), ErrUserNotFound)
	assert.ErrorIs(t, s.RemoveFriend(ctx, a.ID, c.ID), ErrFriendshipNotFound)

	require.NoError(t, s.RemoveFriend(ctx, a.ID, b.ID))
	friends, err = s.Friends(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	_, err = s.Friends(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCommonFriends(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	a := mustCreate(t, s, "a")
	b := mustCreate(t, s, "b")
	c := mustCreate(t, s, "c")
	d := mustCreate(t, s, "d")

	require.NoError(t, s.AddFriend(ctx, a.ID, c.ID))
	require.NoError(t, s.AddFriend(ctx, a.ID, d.ID))
	require.NoError(t, s.AddFriend(ctx, b.ID, c.ID))

	common, err := s.CommonFriends(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID}, ids(common))
	assert.Equal(t, "c", common[0].Login)

	common, err = s.CommonFriends(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.Empty(t, common)

	_, err = s.CommonFriends(ctx, a.ID, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
