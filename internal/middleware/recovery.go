package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"phonebot/internal/logger"
)

// Recovery returns a Gin middleware that turns a handler panic into a 500
// {"error": "..."} response carrying the panic value.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Get().Errorw("panic recovered",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", RequestID(c),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprint(recovered)})
	})
}
