package main

import (
	"notekeeper/internal/auth"
	"notekeeper/internal/config"
	"notekeeper/internal/domain/sqlite"
	"notekeeper/internal/domain/sqlite/repository"
	nkhttp "notekeeper/internal/http"
	"notekeeper/internal/http/handler"
	"notekeeper/internal/http/middleware"
	"notekeeper/internal/service"
	"notekeeper/internal/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	validators.Register(validate)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		panic(err)
	}

	// Getting repos
	noteRepo := repository.NewNoteRepository(db)
	userRepo := repository.NewUserRepository(db)

	tokens := auth.NewTokenService(cfg.SecretKey)

	// Getting services
	userService := service.NewUserService(userRepo, tokens, validate)
	noteService := service.NewNoteService(noteRepo, validate)

	// Getting handlers
	userRoutes := handler.NewUserDefault(userService)
	noteRoutes := handler.NewNoteDefault(noteService)

	e := nkhttp.NewRouter(userRoutes, noteRoutes, middleware.NewAuthMiddleware(tokens))

	log.Infof("Server is running on port %s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		panic(err)
	}
}
