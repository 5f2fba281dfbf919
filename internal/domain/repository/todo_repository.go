package repository

import (
	"context"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
)

// TodoRepository scopes every lookup to the creator so one user can never
// read or mutate another user's todos.
type TodoRepository interface {
	Create(ctx context.Context, t *entity.Todo) error
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.Todo, error)
	GetByID(ctx context.Context, id, creatorID string) (*entity.Todo, error)
	Update(ctx context.Context, t *entity.Todo) error
	Delete(ctx context.Context, id, creatorID string) error
}
