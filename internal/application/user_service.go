package application

import (
	"context"
	"errors"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrBadCredentials  = errors.New("bad credentials")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// UserService owns the credential lifecycle: signup, credential verification,
// and the per-user session list (issue, revoke, resolve).
type UserService struct {
	Repo   repository.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Tokens: tokens, Logger: logger}
}

// Signup creates the user and issues the first session. The plaintext
// password is hashed before anything persists and is never stored.
func (s *UserService) Signup(ctx context.Context, username, email, password string) (*entity.User, string, error) {
	u := &entity.User{Username: username, Email: email, Password: password}
	if verr := u.Validate(); verr != nil {
		return nil, "", verr
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u.Password = hash

	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			field := "account"
			var dup *repository.DuplicateKeyError
			if errors.As(err, &dup) {
				field = dup.Field
			}
			return nil, "", &entity.ValidationError{Fields: map[string]string{
				field: "already taken",
			}}
		}
		return nil, "", err
	}

	token, err := s.IssueSession(ctx, u, entity.AccessAuth)
	if err != nil {
		return nil, "", err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user signed up")
	return u, token, nil
}

// FindByCredentials resolves a login attempt without mutating anything.
// When both username and email are supplied, username wins; the lookup is a
// deterministic tagged choice, never a merged filter.
func (s *UserService) FindByCredentials(ctx context.Context, username, email, password string) (*entity.User, error) {
	var (
		u   *entity.User
		err error
	)
	switch {
	case username != "":
		u, err = s.Repo.GetByUsername(ctx, username)
	case email != "":
		u, err = s.Repo.GetByEmail(ctx, email)
	default:
		return nil, ErrNotFound
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := helpers.ComparePassword(u.Password, password)
	if err != nil {
		// Corrupt stored hash, not a wrong password.
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("stored password hash is unreadable")
		return nil, err
	}
	if !ok {
		return nil, ErrBadCredentials
	}
	return u, nil
}

// Login verifies credentials and issues a fresh session token.
func (s *UserService) Login(ctx context.Context, username, email, password string) (*entity.User, string, error) {
	u, err := s.FindByCredentials(ctx, username, email, password)
	if err != nil {
		return nil, "", err
	}
	token, err := s.IssueSession(ctx, u, entity.AccessAuth)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// IssueSession signs a token for the user and appends it to the session
// list. The in-memory user is updated only after the store write succeeds,
// so a failed issue leaves no partial session state.
func (s *UserService) IssueSession(ctx context.Context, u *entity.User, access string) (string, error) {
	token, err := s.Tokens.Sign(u.ID, access)
	if err != nil {
		return "", err
	}
	next := append(slices.Clone(u.Sessions), entity.Session{Access: access, Token: token})
	if err := s.Repo.UpdateSessions(ctx, u.ID, next); err != nil {
		return "", err
	}
	u.Sessions = next
	return token, nil
}

// RevokeSession removes the first session entry matching the token by exact
// value. Revoking a token that is already gone is a no-op.
func (s *UserService) RevokeSession(ctx context.Context, u *entity.User, token string) error {
	i := u.SessionIndex(token)
	if i < 0 {
		return nil
	}
	next := slices.Delete(slices.Clone(u.Sessions), i, i+1)
	if err := s.Repo.UpdateSessions(ctx, u.ID, next); err != nil {
		return err
	}
	u.Sessions = next
	return nil
}

// ResolveToken maps an inbound token to a live user session. Every failure
// mode collapses to ErrUnauthenticated so callers cannot tell which check
// rejected the token.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.Tokens.Parse(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if claims.Access != entity.AccessAuth {
		return nil, ErrUnauthenticated
	}
	u, err := s.Repo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	// A structurally valid token must still be present in the session list;
	// a revoked token verifies but does not resolve.
	if !u.HasSession(token, entity.AccessAuth) {
		return nil, ErrUnauthenticated
	}
	return u, nil
}
