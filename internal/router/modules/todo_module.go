package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-todo-api/internal/application"
	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
)

// TodoModule wires the todo CRUD routes; every route is auth-protected and
// creator-scoped.
type TodoModule struct {
	Handler *handlers.TodoHandler
	Users   *application.UserService
}

func NewTodoModule(h *handlers.TodoHandler, users *application.UserService) *TodoModule {
	return &TodoModule{Handler: h, Users: users}
}

func (m *TodoModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users))
	{
		auth.POST("/todos", m.Handler.Create)
		auth.GET("/todos", m.Handler.List)
		auth.GET("/todo/:id", m.Handler.Get)
		auth.PATCH("/todo/:id", m.Handler.Update)
		auth.DELETE("/todo/:id", m.Handler.Delete)
	}
}
