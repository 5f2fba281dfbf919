package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-todo-api/config"
	"github.com/oksasatya/go-todo-api/internal/application"
	pginfra "github.com/oksasatya/go-todo-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
)

// Seeds two demo accounts (the first with a live session) and a couple of
// todos for local development.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	tokens := helpers.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	users := application.NewUserService(pginfra.NewUserRepository(pool), tokens, logger)
	todos := application.NewTodoService(pginfra.NewTodoRepository(pool), logger)

	u1, token, err := users.Signup(ctx, "demo_user_1", "demo_user_1@example.com", "123abc!")
	if err != nil {
		log.Fatalf("seed user 1: %v", err)
	}
	logger.WithField("token", token).Info("seeded demo_user_1 with a live session")

	u2, _, err := users.Signup(ctx, "demo_user_2", "demo_user_2@example.com", "456def?")
	if err != nil {
		log.Fatalf("seed user 2: %v", err)
	}

	if _, err := todos.Create(ctx, u1.ID, "First seeded todo"); err != nil {
		log.Fatalf("seed todo: %v", err)
	}
	if _, err := todos.Create(ctx, u2.ID, "Second seeded todo"); err != nil {
		log.Fatalf("seed todo: %v", err)
	}

	logger.Info("seed complete")
}
