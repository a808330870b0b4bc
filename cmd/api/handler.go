package api

import (
	authUsecase "happy-thoughts-backend/internal/auth/usecase"
	thoughtUsecase "happy-thoughts-backend/internal/thought/usecase"
	"happy-thoughts-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	thoughtUsecase thoughtUsecase.ThoughtUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, thoughtUc thoughtUsecase.ThoughtUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		thoughtUsecase: thoughtUc,
		config:         cfg,
	}
}

// Engine builds the gin engine with CORS and all routes attached.
func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.thoughtUsecase, h.config)

	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
