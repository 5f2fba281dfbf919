package repository

import (
	"context"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
)

// UserRepository is the only shared resource of the authentication core; it
// owns per-record atomicity for concurrent session list updates.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateSessions replaces the user's session list in one write.
	UpdateSessions(ctx context.Context, id string, sessions []entity.Session) error
	// UpdatePassword rewrites only the password hash; unrelated updates never
	// touch it.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
