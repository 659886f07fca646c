package middlewares

import (
	"net/http"
	"strings"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token against the auth_tokens table and
// puts the account id and token key into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		key := strings.TrimPrefix(authHeader, "Bearer ")

		var token models.AuthToken
		if err := config.DB.Where("key = ?", key).First(&token).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("userID", token.UserID)
		c.Set("tokenKey", token.Key)
		c.Next()
	}
}
