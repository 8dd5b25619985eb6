package models

import (
	"context"
	"filmorate/proj/internal/storage"
	"filmorate/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LikeModel struct {
	DB *pgxpool.Pool
}

// Add is a no-op when the like already exists.
func (m *LikeModel) Add(ctx context.Context, filmID, userID int64) error {
	_, err := m.DB.Exec(
		ctx,
		"INSERT INTO film_likes (film_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		filmID,
		userID,
	)
	return postgres.MapError(err)
}

func (m *LikeModel) Remove(ctx context.Context, filmID, userID int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM film_likes WHERE film_id = $1 AND user_id = $2", filmID, userID)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
