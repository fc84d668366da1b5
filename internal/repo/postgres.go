package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/tasklist-server/internal/model"
)

// DefaultListName is the task_lists row the server reads and writes.
const DefaultListName = "tasks"

type PostgresRepo struct { // Репозиторий для работы непосредственно с БД
	pool *pgxpool.Pool
	name string
}

func NewPostgresRepo(pool *pgxpool.Pool, name string) *PostgresRepo {
	return &PostgresRepo{
		pool: pool,
		name: name,
	}
}

// Migrate creates the task_lists table. The json type keeps the document text
// as submitted, jsonb would reorder keys.
func (r *PostgresRepo) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS task_lists (
			name TEXT PRIMARY KEY,
			body JSON NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (r *PostgresRepo) Init(ctx context.Context) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `
		INSERT INTO task_lists (name, body) VALUES ($1, $2::json)
		ON CONFLICT (name) DO NOTHING
	`, r.name, string(model.EmptyTaskList))
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() == 1, nil
}

func (r *PostgresRepo) Load(ctx context.Context) (model.TaskList, error) {
	var body string
	err := r.pool.QueryRow(ctx, `
		SELECT body::text FROM task_lists WHERE name = $1
	`, r.name).Scan(&body)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrorNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.TaskList(body), nil
}

func (r *PostgresRepo) Save(ctx context.Context, list model.TaskList) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO task_lists (name, body, updated_at) VALUES ($1, $2::json, now())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = now()
	`, r.name, string(list))
	return err
}
