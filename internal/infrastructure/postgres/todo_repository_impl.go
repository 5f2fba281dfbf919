package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO todos (text, completed, completed_at, creator_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, t.Text, t.Completed, t.CompletedAt, t.CreatorID)

	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *TodoRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, text, completed, completed_at, creator_id, created_at, updated_at
		FROM todos
		WHERE creator_id = $1
		ORDER BY created_at
	`, creatorID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	todos := make([]*entity.Todo, 0)
	for rows.Next() {
		t := &entity.Todo{}
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.CompletedAt,
			&t.CreatorID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) GetByID(ctx context.Context, id, creatorID string) (*entity.Todo, error) {
	t := &entity.Todo{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, text, completed, completed_at, creator_id, created_at, updated_at
		FROM todos
		WHERE id = $1 AND creator_id = $2
	`, id, creatorID)

	if err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.CompletedAt,
		&t.CreatorID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *TodoRepository) Update(ctx context.Context, t *entity.Todo) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE todos
		SET text = $1, completed = $2, completed_at = $3, updated_at = now()
		WHERE id = $4 AND creator_id = $5
	`, t.Text, t.Completed, t.CompletedAt, t.ID, t.CreatorID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, creatorID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND creator_id = $2`, id, creatorID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
