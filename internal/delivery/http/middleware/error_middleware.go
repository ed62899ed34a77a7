package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"interview-marketplace-backend/internal/delivery/http/response"
	"interview-marketplace-backend/pkg/apperror"
	"interview-marketplace-backend/pkg/logger"
	"interview-marketplace-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		var validationErrs validator.ValidationErrors
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError

		switch {
		case errors.As(err, &appErr):
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed", "path", c.FullPath(), "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
		case errors.As(err, &validationErrs):
			response.Error(c, http.StatusBadRequest, "Validation failed", validation.FormatValidationErrors(err))
		case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
			response.Error(c, http.StatusBadRequest, "Malformed request body", nil)
		default:
			// Never expose internal error details to clients.
			logger.Log.Error("internal server error", "path", c.FullPath(), "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
