package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// userIDKey is the gin context key the auth middleware stores the caller id
// under.
const userIDKey = "user_id"

// defaultUserID is used in single-user deployments when no header is sent.
const defaultUserID = "default"

// AuthMiddleware resolves the caller identity. Single-user mode: the id
// comes from the X-User-ID header and falls back to "default".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = defaultUserID
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the caller id set by AuthMiddleware.
func currentUserID(c *gin.Context) string {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return defaultUserID
}

// listParams binds the limit/offset query parameters. Unparseable values
// fall back to the defaults.
func listParams(c *gin.Context) models.ListParams {
	var params models.ListParams
	_ = c.ShouldBindQuery(&params)
	return params
}

// RequestLogger logs one line per request with latency and status.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
