package memory

import (
	"cmp"
	"context"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/storage"
	"slices"
)

type FilmStore struct {
	db *DB
}

func (s *FilmStore) Get(ctx context.Context, id int64) (*models.Film, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	film, ok := s.db.films[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := s.db.resolveFilm(film)
	return &out, nil
}

func (s *FilmStore) List(ctx context.Context) ([]models.Film, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := make([]models.Film, 0, len(s.db.films))
	for _, id := range sortedKeys(s.db.films) {
		out = append(out, s.db.resolveFilm(s.db.films[id]))
	}
	return out, nil
}

func (s *FilmStore) Popular(ctx context.Context, limit int) ([]models.Film, error) {
	films, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(films, func(a, b models.Film) int {
		return cmp.Compare(len(b.Likes), len(a.Likes))
	})
	if limit >= 0 && limit < len(films) {
		films = films[:limit]
	}
	return films, nil
}

func (s *FilmStore) Insert(ctx context.Context, film *models.Film) (*models.Film, error) {
	s.db.mu.Lock()
	if err := s.db.checkFilmRefs(film); err != nil {
		s.db.mu.Unlock()
		return nil, err
	}
	stored := cloneFilm(film)
	stored.ID = s.db.nextFilmID
	s.db.nextFilmID++
	s.db.films[stored.ID] = stored
	s.db.mu.Unlock()
	return s.Get(ctx, stored.ID)
}

func (s *FilmStore) Update(ctx context.Context, film *models.Film) (*models.Film, error) {
	s.db.mu.Lock()
	if _, ok := s.db.films[film.ID]; !ok {
		s.db.mu.Unlock()
		return nil, storage.ErrNotFound
	}
	if err := s.db.checkFilmRefs(film); err != nil {
		s.db.mu.Unlock()
		return nil, err
	}
	s.db.films[film.ID] = cloneFilm(film)
	s.db.mu.Unlock()
	return s.Get(ctx, film.ID)
}

func (s *FilmStore) Delete(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.films[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.db.films, id)
	for e := range s.db.likes {
		if e.from == id {
			delete(s.db.likes, e)
		}
	}
	return nil
}

// cloneFilm copies the parts of film the store keeps, so later changes by the
// caller do not leak in.
func cloneFilm(film *models.Film) models.Film {
	stored := *film
	mpa := *film.Mpa
	stored.Mpa = &mpa
	stored.Genres = models.NewGenreSet(film.Genres.Sorted()...)
	stored.Likes = nil
	return stored
}

// checkFilmRefs mirrors the foreign keys of the relational schema.
func (db *DB) checkFilmRefs(film *models.Film) error {
	if film.Mpa == nil {
		return storage.ErrReference
	}
	if _, ok := db.mpa[film.Mpa.ID]; !ok {
		return storage.ErrReference
	}
	for id := range film.Genres {
		if _, ok := db.genres[id]; !ok {
			return storage.ErrReference
		}
	}
	return nil
}

// resolveFilm returns a copy of film with reference names and likes filled
// in. Callers hold the lock.
func (db *DB) resolveFilm(film models.Film) models.Film {
	mpa := db.mpa[film.Mpa.ID]
	film.Mpa = &mpa
	genres := make(models.GenreSet, len(film.Genres))
	for id := range film.Genres {
		genres.Add(db.genres[id])
	}
	film.Genres = genres
	film.Likes = targets(db.likes, film.ID)
	return film
}
