package delivery

import (
	"net/http"
	"strings"

	"happy-thoughts-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key the resolved user is stored under.
const ContextUserKey = "user"

// AuthMiddleware resolves the Authorization header to a user and aborts with
// 401 when the credential is missing or unknown. The header may carry either
// the raw token or the "Bearer <token>" form.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := authUsecase.ResolveToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}
