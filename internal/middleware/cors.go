package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const corsMaxAge = "86400"

// AdminCORS allows the admin panel to call the admin API from any origin.
func AdminCORS() gin.HandlerFunc {
	return cors("GET, POST, PUT, DELETE, OPTIONS", "Content-Type, X-Admin-Token")
}

// WebhookCORS sets the headers served with webhook responses.
func WebhookCORS() gin.HandlerFunc {
	return cors("POST, OPTIONS", "Content-Type")
}

// cors sets permissive headers on every response and answers preflight
// requests with 200 and an empty body.
func cors(methods, headers string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Allow-Headers", headers)
		h.Set("Access-Control-Max-Age", corsMaxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
