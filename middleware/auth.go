package middleware

import (
	"gonotes/services"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Authorization header and stores the
// authenticated user id in the context. The "Bearer " prefix is
// stripped when present but not required. A missing token responds
// 401; an invalid or expired one responds 400.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := services.ValidateToken(c.GetHeader("Authorization"))
		if err != nil {
			utils.TrackError("auth", "token_rejected")
			utils.Error(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
