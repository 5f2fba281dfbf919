package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

// TodoService is thin CRUD glue over the repository; the only behavior it
// owns is completedAt stamping.
type TodoService struct {
	Repo   repository.TodoRepository
	Logger *logrus.Logger
}

func NewTodoService(repo repository.TodoRepository, logger *logrus.Logger) *TodoService {
	return &TodoService{Repo: repo, Logger: logger}
}

func (s *TodoService) Create(ctx context.Context, creatorID, text string) (*entity.Todo, error) {
	t := &entity.Todo{Text: text, CreatorID: creatorID}
	if verr := t.Validate(); verr != nil {
		return nil, verr
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TodoService) List(ctx context.Context, creatorID string) ([]*entity.Todo, error) {
	return s.Repo.ListByCreator(ctx, creatorID)
}

func (s *TodoService) Get(ctx context.Context, id, creatorID string) (*entity.Todo, error) {
	t, err := s.Repo.GetByID(ctx, id, creatorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// UpdateTodoInput uses pointers so a PATCH only touches the fields present
// in the request body.
type UpdateTodoInput struct {
	Text      *string
	Completed *bool
}

// Update applies the patch. Flipping completed to true stamps completedAt
// with the current time; flipping it to false clears both.
func (s *TodoService) Update(ctx context.Context, id, creatorID string, in UpdateTodoInput) (*entity.Todo, error) {
	t, err := s.Get(ctx, id, creatorID)
	if err != nil {
		return nil, err
	}

	if in.Text != nil {
		t.Text = strings.TrimSpace(*in.Text)
		if verr := t.Validate(); verr != nil {
			return nil, verr
		}
	}
	if in.Completed != nil {
		if *in.Completed {
			now := time.Now()
			t.Completed = true
			t.CompletedAt = &now
		} else {
			t.Completed = false
			t.CompletedAt = nil
		}
	}

	if err := s.Repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id, creatorID string) (*entity.Todo, error) {
	t, err := s.Get(ctx, id, creatorID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(ctx, id, creatorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
