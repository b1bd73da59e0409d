package middleware

import (
	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID reuses the caller's X-Request-Id or mints one, echoes it back and
// scopes the request logger with it.
func RequestID(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(RequestIDHeader, reqID)

		if logg != nil {
			ctx := logg.WithRequestID(c.Request.Context(), reqID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
