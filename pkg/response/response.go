package response

import (
	"time"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
)

// UserView is the client-facing shape of a user. Password hash and session
// list never leave the process.
type UserView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func User(u *entity.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// TodoView mirrors the todo record.
type TodoView struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func Todo(t *entity.Todo) TodoView {
	return TodoView{
		ID:          t.ID,
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
}

func Todos(ts []*entity.Todo) []TodoView {
	out := make([]TodoView, 0, len(ts))
	for _, t := range ts {
		out = append(out, Todo(t))
	}
	return out
}
