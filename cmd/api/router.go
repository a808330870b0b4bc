package api

import (
	"net/http"

	authdelivery "happy-thoughts-backend/internal/auth/delivery"
	authUsecase "happy-thoughts-backend/internal/auth/usecase"
	thoughtDelivery "happy-thoughts-backend/internal/thought/delivery"
	thoughtUsecase "happy-thoughts-backend/internal/thought/usecase"
	"happy-thoughts-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, thoughtUc thoughtUsecase.ThoughtUsecase, cfg *config.Config) {
	authHandler := authdelivery.NewAuthHandler(authUc)
	thoughtHandler := thoughtDelivery.NewThoughtHandler(thoughtUc)

	// API doc (no auth required)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name": "Happy Thoughts API",
			"endpoints": []gin.H{
				{"method": "GET", "path": "/", "description": "API docs"},
				{"method": "POST", "path": "/register", "description": "Register a new user"},
				{"method": "POST", "path": "/login", "description": "Log in and receive an access token"},
				{"method": "GET", "path": "/thoughts", "description": "Get the 20 most recent thoughts"},
				{"method": "GET", "path": "/thoughts/:id", "description": "Get single thought by id"},
				{"method": "POST", "path": "/thoughts", "description": "Post a new thought"},
				{"method": "PATCH", "path": "/thoughts/:id", "description": "Edit your thought"},
				{"method": "DELETE", "path": "/thoughts/:id", "description": "Delete your thought"},
				{"method": "POST", "path": "/thoughts/:id/like", "description": "Like a thought"},
			},
		})
	})

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Public thought routes
	r.GET("/thoughts", thoughtHandler.List)
	r.GET("/thoughts/:id", thoughtHandler.Get)
	r.POST("/thoughts/:id/like", thoughtHandler.Like)

	// Mutating thought routes; gated only in the authenticated variant
	mutating := r.Group("")
	if cfg.AuthEnabled {
		mutating.Use(authdelivery.AuthMiddleware(authUc))
	}
	{
		mutating.POST("/thoughts", thoughtHandler.Create)
		mutating.PATCH("/thoughts/:id", thoughtHandler.Update)
		mutating.DELETE("/thoughts/:id", thoughtHandler.Delete)
	}
}
