package films

import (
	"context"
	"errors"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/lib/validator"
	"filmorate/proj/internal/services/refdata"
	"filmorate/proj/internal/storage"
	"log/slog"

	govalidator "github.com/go-playground/validator/v10"
)

type FilmsStorage interface {
	Get(ctx context.Context, id int64) (*models.Film, error)
	List(ctx context.Context) ([]models.Film, error)
	Popular(ctx context.Context, limit int) ([]models.Film, error)
	Insert(ctx context.Context, film *models.Film) (*models.Film, error)
	Update(ctx context.Context, film *models.Film) (*models.Film, error)
	Delete(ctx context.Context, id int64) error
}

type LikesStorage interface {
	Add(ctx context.Context, filmID, userID int64) error
	Remove(ctx context.Context, filmID, userID int64) error
}

type UserProvider interface {
	Get(ctx context.Context, id int64) (*models.User, error)
}

type RefDataProvider interface {
	Genre(ctx context.Context, id int64) (*models.Genre, error)
	Mpa(ctx context.Context, id int64) (*models.Mpa, error)
}

type FilmService struct {
	log       *slog.Logger
	validator *govalidator.Validate
	storage   FilmsStorage
	likes     LikesStorage
	users     UserProvider
	refs      RefDataProvider
}

func New(
	log *slog.Logger,
	validator *govalidator.Validate,
	storage FilmsStorage,
	likes LikesStorage,
	users UserProvider,
	refs RefDataProvider,
) *FilmService {
	return &FilmService{
		log:       log,
		validator: validator,
		storage:   storage,
		likes:     likes,
		users:     users,
		refs:      refs,
	}
}

func (s *FilmService) Get(ctx context.Context, id int64) (*models.Film, error) {
	const op = "films.FilmService.Get"
	log := s.log.With("op", op, "id", id)
	film, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("film not found")
			return nil, ErrFilmNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return film, nil
}

func (s *FilmService) List(ctx context.Context) ([]models.Film, error) {
	const op = "films.FilmService.List"
	films, err := s.storage.List(ctx)
	if err != nil {
		s.log.Error(err.Error(), "op", op)
		return nil, err
	}
	return films, nil
}

// Popular returns at most count films, most liked first.
func (s *FilmService) Popular(ctx context.Context, count int) ([]models.Film, error) {
	const op = "films.FilmService.Popular"
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	films, err := s.storage.Popular(ctx, count)
	if err != nil {
		s.log.Error(err.Error(), "op", op, "count", count)
		return nil, err
	}
	return films, nil
}

func (s *FilmService) Create(ctx context.Context, film *models.Film) (*models.Film, error) {
	const op = "films.FilmService.Create"
	log := s.log.With("op", op, "name", film.Name)
	if err := s.validate(ctx, film); err != nil {
		log.Info("invalid film", "reason", err.Error())
		return nil, err
	}
	created, err := s.storage.Insert(ctx, film)
	if err != nil {
		if errors.Is(err, storage.ErrReference) {
			log.Info("film references missing genre or mpa rating", "reason", err.Error())
			return nil, refdata.ErrGenreNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("film created", "id", created.ID)
	return created, nil
}

func (s *FilmService) Update(ctx context.Context, film *models.Film) (*models.Film, error) {
	const op = "films.FilmService.Update"
	log := s.log.With("op", op, "id", film.ID, "name", film.Name)
	if film.ID == 0 {
		return nil, ErrMissingID
	}
	if _, err := s.Get(ctx, film.ID); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, film); err != nil {
		log.Info("invalid film", "reason", err.Error())
		return nil, err
	}
	updated, err := s.storage.Update(ctx, film)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("film not found")
			return nil, ErrFilmNotFound
		case errors.Is(err, storage.ErrReference):
			log.Info("film references missing genre or mpa rating", "reason", err.Error())
			return nil, refdata.ErrGenreNotFound
		}
		log.Error("Error updating film: " + err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *FilmService) Delete(ctx context.Context, id int64) error {
	const op = "films.FilmService.Delete"
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrFilmNotFound
		}
		s.log.Error(err.Error(), "op", op, "id", id)
		return err
	}
	return nil
}

// AddLike records that the user likes the film. Liking twice is a no-op.
func (s *FilmService) AddLike(ctx context.Context, filmID, userID int64) error {
	const op = "films.FilmService.AddLike"
	log := s.log.With("op", op, "film_id", filmID, "user_id", userID)
	if err := s.requireParticipants(ctx, filmID, userID); err != nil {
		return err
	}
	if err := s.likes.Add(ctx, filmID, userID); err != nil {
		if errors.Is(err, storage.ErrReference) {
			log.Info("film or user vanished while adding a like")
			return ErrFilmNotFound
		}
		log.Error(err.Error())
		return err
	}
	log.Info("like added")
	return nil
}

// RemoveLike fails with ErrLikeNotFound when the user never liked the film.
func (s *FilmService) RemoveLike(ctx context.Context, filmID, userID int64) error {
	const op = "films.FilmService.RemoveLike"
	log := s.log.With("op", op, "film_id", filmID, "user_id", userID)
	if err := s.requireParticipants(ctx, filmID, userID); err != nil {
		return err
	}
	if err := s.likes.Remove(ctx, filmID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("like not found")
			return ErrLikeNotFound
		}
		log.Error(err.Error())
		return err
	}
	log.Info("like removed")
	return nil
}

func (s *FilmService) requireParticipants(ctx context.Context, filmID, userID int64) error {
	if _, err := s.Get(ctx, filmID); err != nil {
		return err
	}
	_, err := s.users.Get(ctx, userID)
	return err
}

// validate checks the film fields and resolves its MPA rating and genres,
// replacing them with the catalogue entries.
func (s *FilmService) validate(ctx context.Context, film *models.Film) error {
	if err := validator.ValidateFilm(s.validator, film); err != nil {
		return err
	}
	mpa, err := s.refs.Mpa(ctx, film.Mpa.ID)
	if err != nil {
		return err
	}
	film.Mpa = mpa
	genres := make(models.GenreSet, len(film.Genres))
	for _, id := range film.Genres.IDs() {
		genre, err := s.refs.Genre(ctx, id)
		if err != nil {
			return err
		}
		genres.Add(*genre)
	}
	film.Genres = genres
	return nil
}
