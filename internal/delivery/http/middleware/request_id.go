package middleware

import (
	"context"
	"regexp"

	"interview-marketplace-backend/internal/delivery/http/response"
	"interview-marketplace-backend/pkg/audit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID reuses a well-formed incoming X-Request-ID or generates one. The id
// is echoed in the response header, stored under response.RequestIDKey for the response
// envelope and attached to the request context for audit events.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !requestIDPattern.MatchString(id) {
			id = uuid.NewString()
		}

		c.Set(response.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), audit.RequestIDKey, id))

		c.Next()
	}
}
