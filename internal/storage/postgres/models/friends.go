package models

import (
	"context"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/storage"
	"filmorate/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FriendModel stores directed friendship edges: a row (user_id, friend_id)
// means user_id lists friend_id as a friend, not the other way round.
type FriendModel struct {
	DB *pgxpool.Pool
}

func (m *FriendModel) Add(ctx context.Context, userID, friendID int64) error {
	_, err := m.DB.Exec(
		ctx,
		"INSERT INTO friendships (user_id, friend_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		userID,
		friendID,
	)
	return postgres.MapError(err)
}

func (m *FriendModel) Remove(ctx context.Context, userID, friendID int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM friendships WHERE user_id = $1 AND friend_id = $2", userID, friendID)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *FriendModel) List(ctx context.Context, userID int64) ([]models.User, error) {
	return collectUsers(
		ctx,
		m.DB,
		`SELECT u.id, u.email, u.login, u.name, u.birthday FROM users u
		JOIN friendships f ON f.friend_id = u.id
		WHERE f.user_id = $1
		ORDER BY u.id`,
		userID,
	)
}

func (m *FriendModel) Common(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	return collectUsers(
		ctx,
		m.DB,
		`SELECT u.id, u.email, u.login, u.name, u.birthday FROM users u
		JOIN friendships f1 ON f1.friend_id = u.id AND f1.user_id = $1
		JOIN friendships f2 ON f2.friend_id = u.id AND f2.user_id = $2
		ORDER BY u.id`,
		userID,
		otherID,
	)
}
