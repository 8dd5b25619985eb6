package postgres

import (
	"context"
	_ "embed"
	"errors"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/storage"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresDB struct {
	Conn *pgxpool.Pool
}

const (
	ErrConflictCode   = "23505"
	ErrForeignKeyCode = "23503"
)

//go:embed schema.sql
var schemaSQL string

// Querier is implemented by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func New(ctx context.Context, dsn string, maxConns int, maxConnIdleTime time.Duration) (*PostgresDB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = int32(maxConns)
	cfg.MaxConnIdleTime = maxConnIdleTime
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresDB{Conn: pool}, nil
}

// Init creates missing tables and, when seed is set, inserts the genre and
// MPA reference rows. Both steps are idempotent.
func (db *PostgresDB) Init(ctx context.Context, seed bool) error {
	if _, err := db.Conn.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres.Init: schema: %w", err)
	}
	if !seed {
		return nil
	}
	batch := &pgx.Batch{}
	for _, m := range models.SeedMpaRatings {
		batch.Queue("INSERT INTO mpa_ratings (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING", m.ID, m.Name)
	}
	for _, g := range models.SeedGenres {
		batch.Queue("INSERT INTO genres (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING", g.ID, g.Name)
	}
	if err := db.Conn.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("postgres.Init: seed: %w", err)
	}
	return nil
}

func (db *PostgresDB) Close() {
	db.Conn.Close()
}

// MapError translates driver errors into storage sentinels. Unknown errors
// are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case ErrConflictCode:
			return fmt.Errorf("%w: %s", storage.ErrConflict, pgxErr.ConstraintName)
		case ErrForeignKeyCode:
			return fmt.Errorf("%w: %s", storage.ErrReference, pgxErr.ConstraintName)
		}
	}
	return err
}
