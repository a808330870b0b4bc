package main

import (
	"log"

	api "happy-thoughts-backend/cmd/api"
	authdomain "happy-thoughts-backend/internal/auth/domain"
	authRepo "happy-thoughts-backend/internal/auth/repository"
	authUsecase "happy-thoughts-backend/internal/auth/usecase"
	thoughtdomain "happy-thoughts-backend/internal/thought/domain"
	thoughtRepo "happy-thoughts-backend/internal/thought/repository"
	"happy-thoughts-backend/internal/thought/seed"
	thoughtUsecase "happy-thoughts-backend/internal/thought/usecase"
	"happy-thoughts-backend/pkg/config"
	"happy-thoughts-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &thoughtdomain.Thought{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	thoughtRepository := thoughtRepo.NewGormThoughtRepository(db)

	// Wipe and repopulate the thought collection when requested
	if cfg.ResetDB {
		if err := seed.Load(thoughtRepository); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository)
	thoughtUsecaseInstance := thoughtUsecase.NewThoughtUsecase(thoughtRepository, cfg.AuthEnabled)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, thoughtUsecaseInstance, cfg)

	if !cfg.AuthEnabled {
		log.Printf("Authentication disabled: thoughts are anonymous and unprotected")
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
