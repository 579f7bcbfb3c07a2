package middleware

import (
	"log"
	"net/http"

	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns a panicking handler into a 500 response.
// Errors stay local to the request; the server keeps serving.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("http", "panic")
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
