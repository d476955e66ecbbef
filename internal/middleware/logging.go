package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request with method, path, status, duration and
// the authenticated user when one is present.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start).Milliseconds()
		status := c.Writer.Status()

		var userID uint
		if claims := GetClaims(c); claims != nil {
			userID = claims.UserID
		}

		if status >= 500 {
			logger.Error("request failed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"user_id", userID,
				"duration_ms", duration,
				"errors", c.Errors.String(),
			)
		} else {
			logger.Info("request",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"user_id", userID,
				"duration_ms", duration,
			)
		}
	}
}
