package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stockfolio/internal/errors"
)

// BodyLimit returns a Gin middleware that rejects request bodies larger than
// maxBytes. A declared Content-Length above the limit is rejected up front;
// otherwise reads past the limit fail with *http.MaxBytesError, which
// handlers report as PAYLOAD_TOO_LARGE.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			_ = c.Error(apperrors.ErrPayloadTooLarge)
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
