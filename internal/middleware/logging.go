package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stockfolio/internal/logger"
)

const (
	requestIDKey  = "requestID"
	issueCountKey = "schemaIssues"
)

// RecordIssues stores the number of schema issues found while handling the
// request so that RequestLogging can report it.
func RecordIssues(c *gin.Context, n int) {
	c.Set(issueCountKey, c.GetInt(issueCountKey)+n)
}

// RequestLogging returns a Gin middleware that logs each request with a
// request ID, the matched route, the schema it targeted and the number of
// schema issues the handler recorded. Requests that ended with validation
// issues are logged at warn level.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.New().String()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		fields := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if name := c.Param("name"); name != "" {
			fields = append(fields, "schema", name)
		}

		issues, recorded := c.Get(issueCountKey)
		if !recorded {
			logger.Get().Infow("request", fields...)
			return
		}
		fields = append(fields, "issues", issues)
		if issues.(int) > 0 {
			logger.Get().Warnw("request", fields...)
			return
		}
		logger.Get().Infow("request", fields...)
	}
}
