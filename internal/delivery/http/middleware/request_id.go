package middleware

import (
	"context"
	"regexp"

	"ai-marketing-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// Incoming ids are echoed only when they look like ids, never arbitrary text
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID tags every request with an id, reusing a sane incoming X-Request-ID.
// The id lands in the gin context, the request context and the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !requestIDPattern.MatchString(id) {
			id = uuid.NewString()
		}

		c.Set("RequestID", id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeyRequestID, id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
