package models

import (
	"context"
	"filmorate/proj/internal/domain/fields"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/storage"
	"filmorate/proj/internal/storage/postgres"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserModel struct {
	DB *pgxpool.Pool
}

type userRow struct {
	ID       int64     `db:"id"`
	Email    string    `db:"email"`
	Login    string    `db:"login"`
	Name     string    `db:"name"`
	Birthday time.Time `db:"birthday"`
}

func (r userRow) toUser() models.User {
	return models.User{
		ID:       r.ID,
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: fields.DateOf(r.Birthday),
		Friends:  []int64{},
	}
}

func (m *UserModel) Get(ctx context.Context, id int64) (*models.User, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, email, login, name, birthday FROM users WHERE id = $1", id)
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return nil, postgres.MapError(err)
	}
	users := []models.User{row.toUser()}
	if err := populateFriends(ctx, m.DB, users); err != nil {
		return nil, err
	}
	return &users[0], nil
}

func (m *UserModel) List(ctx context.Context) ([]models.User, error) {
	return collectUsers(ctx, m.DB, "SELECT id, email, login, name, birthday FROM users ORDER BY id")
}

func (m *UserModel) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO users (email, login, name, birthday) VALUES ($1, $2, $3, $4)
		RETURNING id, email, login, name, birthday`,
		user.Email,
		user.Login,
		user.Name,
		user.Birthday.Time,
	)
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return nil, postgres.MapError(err)
	}
	inserted := row.toUser()
	return &inserted, nil
}

func (m *UserModel) Update(ctx context.Context, user *models.User) (*models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE users SET email = $1, login = $2, name = $3, birthday = $4
		WHERE id = $5 RETURNING id, email, login, name, birthday`,
		user.Email,
		user.Login,
		user.Name,
		user.Birthday.Time,
		user.ID,
	)
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return nil, postgres.MapError(err)
	}
	users := []models.User{row.toUser()}
	if err := populateFriends(ctx, m.DB, users); err != nil {
		return nil, err
	}
	return &users[0], nil
}

func (m *UserModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func collectUsers(ctx context.Context, q postgres.Querier, query string, args ...any) ([]models.User, error) {
	rows, _ := q.Query(ctx, query, args...)
	userRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(userRows))
	for _, row := range userRows {
		users = append(users, row.toUser())
	}
	if err := populateFriends(ctx, q, users); err != nil {
		return nil, err
	}
	return users, nil
}

// populateFriends loads the followed user ids of all users in one query.
func populateFriends(ctx context.Context, q postgres.Querier, users []models.User) error {
	if len(users) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(users))
	index := make(map[int64]*models.User, len(users))
	for i := range users {
		ids = append(ids, users[i].ID)
		index[users[i].ID] = &users[i]
	}
	type friendRow struct {
		UserID   int64 `db:"user_id"`
		FriendID int64 `db:"friend_id"`
	}
	rows, _ := q.Query(
		ctx,
		"SELECT user_id, friend_id FROM friendships WHERE user_id = ANY($1) ORDER BY user_id, friend_id",
		ids,
	)
	friends, err := pgx.CollectRows(rows, pgx.RowToStructByName[friendRow])
	if err != nil {
		return err
	}
	for _, f := range friends {
		user := index[f.UserID]
		user.Friends = append(user.Friends, f.FriendID)
	}
	return nil
}
