package middleware

import (
	"time"

	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

func Logging(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logg == nil {
			c.Next()
			return
		}

		ctx := logg.WithFields(c.Request.Context(), map[string]any{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		})
		c.Request = c.Request.WithContext(ctx)
		start := time.Now()

		c.Next()

		ctx = logg.WithFields(ctx, map[string]any{
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		logg.Info(ctx, "request.complete")
	}
}
