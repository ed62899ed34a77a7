package response

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request id echoed in every envelope.
const RequestIDKey = "RequestID"

// Response is the envelope of every API reply.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(RequestIDKey),
	})
}

func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Message:   message,
		Error:     err,
		RequestID: c.GetString(RequestIDKey),
	})
}

// Abort writes an error envelope and stops the handler chain. Middlewares use it
// to reject a request before it reaches a handler.
func Abort(c *gin.Context, code int, message string, err interface{}) {
	Error(c, code, message, err)
	c.Abort()
}
