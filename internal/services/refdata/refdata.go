package refdata

import (
	"context"
	"errors"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/storage"
	"log/slog"
)

type GenresStorage interface {
	Get(ctx context.Context, id int64) (*models.Genre, error)
	List(ctx context.Context) ([]models.Genre, error)
}

type MpaStorage interface {
	Get(ctx context.Context, id int64) (*models.Mpa, error)
	List(ctx context.Context) ([]models.Mpa, error)
}

// Service serves the read-only genre and MPA rating catalogues.
type Service struct {
	log    *slog.Logger
	genres GenresStorage
	mpa    MpaStorage
}

func New(log *slog.Logger, genres GenresStorage, mpa MpaStorage) *Service {
	return &Service{
		log:    log,
		genres: genres,
		mpa:    mpa,
	}
}

func (s *Service) Genre(ctx context.Context, id int64) (*models.Genre, error) {
	const op = "refdata.Service.Genre"
	log := s.log.With("op", op, "id", id)
	genre, err := s.genres.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("genre not found")
			return nil, ErrGenreNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return genre, nil
}

func (s *Service) Genres(ctx context.Context) ([]models.Genre, error) {
	const op = "refdata.Service.Genres"
	genres, err := s.genres.List(ctx)
	if err != nil {
		s.log.Error(err.Error(), "op", op)
		return nil, err
	}
	return genres, nil
}

func (s *Service) Mpa(ctx context.Context, id int64) (*models.Mpa, error) {
	const op = "refdata.Service.Mpa"
	log := s.log.With("op", op, "id", id)
	mpa, err := s.mpa.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("mpa rating not found")
			return nil, ErrMpaNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return mpa, nil
}

func (s *Service) MpaRatings(ctx context.Context) ([]models.Mpa, error) {
	const op = "refdata.Service.MpaRatings"
	ratings, err := s.mpa.List(ctx)
	if err != nil {
		s.log.Error(err.Error(), "op", op)
		return nil, err
	}
	return ratings, nil
}
