package router

import (
	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/container"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-todo-api/internal/interface/http"
	"github.com/oksasatya/go-todo-api/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()

	userRepo := postgres.NewUserRepository(container.GetPGPool())
	todoRepo := postgres.NewTodoRepository(container.GetPGPool())

	userSvc := application.NewUserService(userRepo, container.GetTokens(), logger)
	todoSvc := application.NewTodoService(todoRepo, logger)

	userHandler := handlers.NewUserHandler(userSvc, logger)
	todoHandler := handlers.NewTodoHandler(todoSvc, logger)

	r.Add(modules.NewUserModule(userHandler, userSvc, container.GetRedis()))
	r.Add(modules.NewTodoModule(todoHandler, userSvc))
}
