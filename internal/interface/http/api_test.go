package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/memory"
	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
	"github.com/oksasatya/go-todo-api/internal/router"
	"github.com/oksasatya/go-todo-api/internal/router/modules"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
	"github.com/oksasatya/go-todo-api/pkg/validation"
)

// newServer wires the full route surface against in-memory repositories.
// The rate limiter is disabled by the nil redis client.
func newServer(t *testing.T) (*gin.Engine, *application.UserService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	users := application.NewUserService(memory.NewUserRepository(), helpers.NewTokenManager("test-secret", 0), logger)
	todos := application.NewTodoService(memory.NewTodoRepository(), logger)

	r := gin.New()
	reg := router.NewRegistry(r)
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(users, logger), users, nil))
	reg.Add(modules.NewTodoModule(handlers.NewTodoHandler(todos, logger), users))
	reg.RegisterAll()
	return r, users
}

func signup(t *testing.T, r *gin.Engine, username, email, password string) string {
	t.Helper()
	result := apitest.New().
		Handler(r).
		Post("/users").
		JSON(map[string]string{"username": username, "email": email, "password": password}).
		Expect(t).
		Status(http.StatusOK).
		End()
	token := result.Response.Header.Get("x-auth")
	require.NotEmpty(t, token)
	return token
}

func TestSignupAndProfile(t *testing.T) {
	r, _ := newServer(t)

	result := apitest.New().
		Handler(r).
		Post("/users").
		JSON(map[string]string{"username": "test_user_1", "email": "test_user_1@example.com", "password": "123abc!"}).
		Expect(t).
		Status(http.StatusOK).
		HeaderPresent("x-auth").
		Assert(jsonpath.Equal("$.username", "test_user_1")).
		Assert(jsonpath.Equal("$.email", "test_user_1@example.com")).
		Assert(jsonpath.NotPresent("$.password")).
		Assert(jsonpath.NotPresent("$.sessions")).
		End()
	token := result.Response.Header.Get("x-auth")
	require.NotEmpty(t, token)

	apitest.New().
		Handler(r).
		Get("/users/me").
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.username", "test_user_1")).
		Assert(jsonpath.Equal("$.email", "test_user_1@example.com")).
		Assert(jsonpath.NotPresent("$.password")).
		End()

	apitest.New().
		Handler(r).
		Get("/users/me").
		Header("x-auth", token+"x").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{}`).
		End()

	apitest.New().
		Handler(r).
		Get("/users/me").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{}`).
		End()
}

func TestSignup_ValidationAndDuplicates(t *testing.T) {
	r, _ := newServer(t)
	signup(t, r, "test_user_1", "test_user_1@example.com", "123abc!")

	// Duplicate username
	apitest.New().
		Handler(r).
		Post("/users").
		JSON(map[string]string{"username": "test_user_1", "email": "test_user_9@example.com", "password": "123abc!"}).
		Expect(t).
		Status(http.StatusBadRequest).
		End()

	// Duplicate email
	apitest.New().
		Handler(r).
		Post("/users").
		JSON(map[string]string{"username": "test_user_2", "email": "test_user_1@example.com", "password": "123abc!"}).
		Expect(t).
		Status(http.StatusBadRequest).
		End()

	// Shape failures
	apitest.New().
		Handler(r).
		Post("/users").
		JSON(map[string]string{"username": "ab", "email": "test_user_3@example.com", "password": "123abc!"}).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
	apitest.New().
		Handler(r).
		Post("/users").
		JSON(map[string]string{"username": "test_user_3", "email": "not-an-email", "password": "123abc!"}).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestLogin(t *testing.T) {
	r, users := newServer(t)
	signup(t, r, "test_user_1", "test_user_1@example.com", "123abc!")

	result := apitest.New().
		Handler(r).
		Post("/users/login").
		JSON(map[string]string{"username": "test_user_1", "password": "123abc!"}).
		Expect(t).
		Status(http.StatusOK).
		HeaderPresent("x-auth").
		Body(`{}`).
		End()
	token := result.Response.Header.Get("x-auth")

	u, err := users.ResolveToken(context.Background(), token)
	require.NoError(t, err)
	assert.Len(t, u.Sessions, 2, "signup session plus login session")

	// Wrong password
	apitest.New().
		Handler(r).
		Post("/users/login").
		JSON(map[string]string{"username": "test_user_1", "password": "wrong!"}).
		Expect(t).
		Status(http.StatusBadRequest).
		End()

	// Unknown username
	apitest.New().
		Handler(r).
		Post("/users/login").
		JSON(map[string]string{"username": "nobody", "password": "123abc!"}).
		Expect(t).
		Status(http.StatusNotFound).
		End()

	// Login by email works too
	apitest.New().
		Handler(r).
		Post("/users/login").
		JSON(map[string]string{"email": "test_user_1@example.com", "password": "123abc!"}).
		Expect(t).
		Status(http.StatusOK).
		HeaderPresent("x-auth").
		End()

	// No identifier at all
	apitest.New().
		Handler(r).
		Post("/users/login").
		JSON(map[string]string{"password": "123abc!"}).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestLogout(t *testing.T) {
	r, _ := newServer(t)
	token := signup(t, r, "test_user_1", "test_user_1@example.com", "123abc!")

	result := apitest.New().
		Handler(r).
		Delete("/users/me/token").
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusOK).
		End()
	assert.Empty(t, result.Response.Header.Get("x-auth"), "logout does not hand back a token")

	// The revoked token no longer authenticates.
	apitest.New().
		Handler(r).
		Get("/users/me").
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{}`).
		End()
}

func TestTodoRoutes(t *testing.T) {
	r, _ := newServer(t)
	token := signup(t, r, "test_user_1", "test_user_1@example.com", "123abc!")
	otherToken := signup(t, r, "test_user_2", "test_user_2@example.com", "456def?")

	// All todo routes require auth.
	apitest.New().
		Handler(r).
		Get("/todos").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{}`).
		End()

	result := apitest.New().
		Handler(r).
		Post("/todos").
		Header("x-auth", token).
		JSON(map[string]string{"text": "write tests"}).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.text", "write tests")).
		Assert(jsonpath.Equal("$.completed", false)).
		End()

	var created struct {
		ID string `json:"id"`
	}
	result.JSON(&created)
	require.NotEmpty(t, created.ID)

	apitest.New().
		Handler(r).
		Get("/todos").
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$.todos", 1)).
		End()

	// Another user sees an empty list and cannot fetch the todo.
	apitest.New().
		Handler(r).
		Get("/todos").
		Header("x-auth", otherToken).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$.todos", 0)).
		End()
	apitest.New().
		Handler(r).
		Get("/todo/"+created.ID).
		Header("x-auth", otherToken).
		Expect(t).
		Status(http.StatusNotFound).
		End()

	// Malformed id is a 400, not a 404.
	apitest.New().
		Handler(r).
		Get("/todo/INVALID_ID").
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{}`).
		End()

	// Completing stamps completed_at; un-completing clears it.
	apitest.New().
		Handler(r).
		Patch("/todo/"+created.ID).
		Header("x-auth", token).
		JSON(map[string]any{"completed": true}).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.completed", true)).
		Assert(jsonpath.Present("$.completed_at")).
		End()
	apitest.New().
		Handler(r).
		Patch("/todo/"+created.ID).
		Header("x-auth", token).
		JSON(map[string]any{"completed": false}).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.completed", false)).
		End()

	apitest.New().
		Handler(r).
		Delete("/todo/"+created.ID).
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.id", created.ID)).
		End()
	apitest.New().
		Handler(r).
		Get("/todo/"+created.ID).
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusNotFound).
		End()
}
