package memory

import (
	"context"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/storage"
)

type GenreStore struct {
	db *DB
}

func (s *GenreStore) Get(ctx context.Context, id int64) (*models.Genre, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	genre, ok := s.db.genres[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &genre, nil
}

func (s *GenreStore) List(ctx context.Context) ([]models.Genre, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := make([]models.Genre, 0, len(s.db.genres))
	for _, id := range sortedKeys(s.db.genres) {
		out = append(out, s.db.genres[id])
	}
	return out, nil
}

type MpaStore struct {
	db *DB
}

func (s *MpaStore) Get(ctx context.Context, id int64) (*models.Mpa, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	mpa, ok := s.db.mpa[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &mpa, nil
}

func (s *MpaStore) List(ctx context.Context) ([]models.Mpa, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := make([]models.Mpa, 0, len(s.db.mpa))
	for _, id := range sortedKeys(s.db.mpa) {
		out = append(out, s.db.mpa[id])
	}
	return out, nil
}
