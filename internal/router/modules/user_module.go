package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-todo-api/internal/application"
	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
)

// UserModule wires the account routes.
// Public: POST /users (signup), POST /users/login
// Protected: GET /users/me, DELETE /users/me/token
type UserModule struct {
	Handler *handlers.UserHandler
	Users   *application.UserService
	RDB     *redis.Client
}

func NewUserModule(h *handlers.UserHandler, users *application.UserService, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Users: users, RDB: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/users", signupLimiter, m.Handler.Signup)
	rg.POST("/users/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users))
	{
		auth.GET("/users/me", m.Handler.Me)
		auth.DELETE("/users/me/token", m.Handler.Logout)
	}
}
