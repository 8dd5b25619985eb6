package refdata

import (
	"context"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/storage/memory"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	store := memory.New(true)
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), store.Genre, store.Mpa)
}

func TestGenres(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	genres, err := s.Genres(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SeedGenres, genres)

	genre, err := s.Genre(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Comedy", genre.Name)

	_, err = s.Genre(ctx, 9999)
	assert.ErrorIs(t, err, ErrGenreNotFound)
}

func TestMpa(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	ratings, err := s.MpaRatings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SeedMpaRatings, ratings)

	mpa, err := s.Mpa(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "NC-17", mpa.Name)

	_, err = s.Mpa(ctx, 9999)
	assert.ErrorIs(t, err, ErrMpaNotFound)
}
