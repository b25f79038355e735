package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"factcheck/pkg/utils"
)

// BearerAuthMiddleware requires an "Authorization: Bearer" header and stores
// the raw token under "access_token". When secret is non-empty the token is
// also verified locally and its claims are stored under "user_id",
// "email" and "role".
func BearerAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		if secret != "" {
			claims, err := utils.ValidateToken(tokenString, []byte(secret))
			if err != nil {
				utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
				c.Abort()
				return
			}
			c.Set("user_id", claims.Subject)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)
		}

		c.Set("access_token", tokenString)
		c.Next()
	}
}
