package models

import (
	"context"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GenreModel struct {
	DB *pgxpool.Pool
}

func (m *GenreModel) Get(ctx context.Context, id int64) (*models.Genre, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, name FROM genres WHERE id = $1", id)
	genre, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return &genre, nil
}

func (m *GenreModel) List(ctx context.Context) ([]models.Genre, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, name FROM genres ORDER BY id")
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Genre])
}

type MpaModel struct {
	DB *pgxpool.Pool
}

func (m *MpaModel) Get(ctx context.Context, id int64) (*models.Mpa, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, name FROM mpa_ratings WHERE id = $1", id)
	mpa, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Mpa])
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return &mpa, nil
}

func (m *MpaModel) List(ctx context.Context) ([]models.Mpa, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, name FROM mpa_ratings ORDER BY id")
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Mpa])
}
