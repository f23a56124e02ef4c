package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tạo requestId nếu chưa có và gán vào context
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		// Gán vào context để dùng trong controller hoặc service
		c.Set("requestId", requestID)

		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()
	}
}
