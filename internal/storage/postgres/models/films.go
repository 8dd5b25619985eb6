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

type FilmModel struct {
	DB *pgxpool.Pool
}

const filmSelect = `SELECT f.id, f.name, f.description, f.release_date, f.duration, f.mpa_id, m.name AS mpa_name
	FROM films f JOIN mpa_ratings m ON m.id = f.mpa_id`

type filmRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ReleaseDate time.Time `db:"release_date"`
	Duration    int32     `db:"duration"`
	MpaID       int64     `db:"mpa_id"`
	MpaName     string    `db:"mpa_name"`
}

func (r filmRow) toFilm() models.Film {
	return models.Film{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: fields.DateOf(r.ReleaseDate),
		Duration:    r.Duration,
		Mpa:         &models.Mpa{ID: r.MpaID, Name: r.MpaName},
		Genres:      models.GenreSet{},
		Likes:       []int64{},
	}
}

func (m *FilmModel) Get(ctx context.Context, id int64) (*models.Film, error) {
	rows, _ := m.DB.Query(ctx, filmSelect+` WHERE f.id = $1`, id)
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[filmRow])
	if err != nil {
		return nil, postgres.MapError(err)
	}
	films := []models.Film{row.toFilm()}
	if err := m.populate(ctx, films); err != nil {
		return nil, err
	}
	return &films[0], nil
}

func (m *FilmModel) List(ctx context.Context) ([]models.Film, error) {
	return m.collect(ctx, filmSelect+` ORDER BY f.id`)
}

// Popular ranks films by like count, ties go to the older film.
func (m *FilmModel) Popular(ctx context.Context, limit int) ([]models.Film, error) {
	return m.collect(ctx, filmSelect+`
	LEFT JOIN film_likes fl ON fl.film_id = f.id
	GROUP BY f.id, m.id
	ORDER BY count(fl.user_id) DESC, f.id ASC
	LIMIT $1`, limit)
}

func (m *FilmModel) Insert(ctx context.Context, film *models.Film) (*models.Film, error) {
	var id int64
	err := pgx.BeginFunc(ctx, m.DB, func(tx pgx.Tx) error {
		err := tx.QueryRow(
			ctx,
			`INSERT INTO films (name, description, release_date, duration, mpa_id)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			film.Name,
			film.Description,
			film.ReleaseDate.Time,
			film.Duration,
			film.Mpa.ID,
		).Scan(&id)
		if err != nil {
			return err
		}
		return replaceGenres(ctx, tx, id, film.Genres.IDs())
	})
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return m.Get(ctx, id)
}

func (m *FilmModel) Update(ctx context.Context, film *models.Film) (*models.Film, error) {
	err := pgx.BeginFunc(ctx, m.DB, func(tx pgx.Tx) error {
		status, err := tx.Exec(
			ctx,
			`UPDATE films SET name = $1, description = $2, release_date = $3, duration = $4, mpa_id = $5
			WHERE id = $6`,
			film.Name,
			film.Description,
			film.ReleaseDate.Time,
			film.Duration,
			film.Mpa.ID,
			film.ID,
		)
		if err != nil {
			return err
		}
		if status.RowsAffected() == 0 {
			return storage.ErrNotFound
		}
		return replaceGenres(ctx, tx, film.ID, film.Genres.IDs())
	})
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return m.Get(ctx, film.ID)
}

func (m *FilmModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM films WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *FilmModel) collect(ctx context.Context, query string, args ...any) ([]models.Film, error) {
	rows, _ := m.DB.Query(ctx, query, args...)
	filmRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[filmRow])
	if err != nil {
		return nil, err
	}
	films := make([]models.Film, 0, len(filmRows))
	for _, row := range filmRows {
		films = append(films, row.toFilm())
	}
	if err := m.populate(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

// populate loads genres and likes for all films with one query each.
func (m *FilmModel) populate(ctx context.Context, films []models.Film) error {
	if len(films) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(films))
	index := make(map[int64]*models.Film, len(films))
	for i := range films {
		ids = append(ids, films[i].ID)
		index[films[i].ID] = &films[i]
	}

	type genreRow struct {
		FilmID int64  `db:"film_id"`
		ID     int64  `db:"id"`
		Name   string `db:"name"`
	}
	rows, _ := m.DB.Query(
		ctx,
		`SELECT fg.film_id, g.id, g.name FROM film_genres fg
		JOIN genres g ON g.id = fg.genre_id
		WHERE fg.film_id = ANY($1)`,
		ids,
	)
	genres, err := pgx.CollectRows(rows, pgx.RowToStructByName[genreRow])
	if err != nil {
		return err
	}
	for _, g := range genres {
		index[g.FilmID].Genres.Add(models.Genre{ID: g.ID, Name: g.Name})
	}

	type likeRow struct {
		FilmID int64 `db:"film_id"`
		UserID int64 `db:"user_id"`
	}
	rows, _ = m.DB.Query(
		ctx,
		`SELECT film_id, user_id FROM film_likes WHERE film_id = ANY($1) ORDER BY film_id, user_id`,
		ids,
	)
	likes, err := pgx.CollectRows(rows, pgx.RowToStructByName[likeRow])
	if err != nil {
		return err
	}
	for _, l := range likes {
		film := index[l.FilmID]
		film.Likes = append(film.Likes, l.UserID)
	}
	return nil
}

// replaceGenres drops every genre association of the film and inserts the
// given set.
func replaceGenres(ctx context.Context, q postgres.Querier, filmID int64, genreIDs []int64) error {
	if _, err := q.Exec(ctx, "DELETE FROM film_genres WHERE film_id = $1", filmID); err != nil {
		return err
	}
	if len(genreIDs) == 0 {
		return nil
	}
	_, err := q.Exec(
		ctx,
		"INSERT INTO film_genres (film_id, genre_id) SELECT $1, unnest($2::bigint[])",
		filmID,
		genreIDs,
	)
	return err
}
