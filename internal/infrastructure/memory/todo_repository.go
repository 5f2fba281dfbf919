package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

type TodoRepository struct {
	mu    sync.Mutex
	todos []*entity.Todo // insertion order preserved
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{}
}

func (r *TodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	c := *t
	r.todos = append(r.todos, &c)
	return nil
}

func (r *TodoRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Todo, 0)
	for _, t := range r.todos {
		if t.CreatorID == creatorID {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id, creatorID string) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.todos {
		if t.ID == id && t.CreatorID == creatorID {
			c := *t
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *TodoRepository) Update(ctx context.Context, in *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.todos {
		if t.ID == in.ID && t.CreatorID == in.CreatorID {
			t.Text = in.Text
			t.Completed = in.Completed
			t.CompletedAt = in.CompletedAt
			t.UpdatedAt = time.Now()
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *TodoRepository) Delete(ctx context.Context, id, creatorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.todos {
		if t.ID == id && t.CreatorID == creatorID {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
