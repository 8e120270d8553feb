package middleware

import (
	"errors"
	"net/http"

	"edu-finder-backend/internal/delivery/http/response"
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/pkg/apperror"
	"edu-finder-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			// Never expose internal error details to clients
			logger.Log.Error("Request failed",
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"path", c.FullPath(),
				"status", appErr.Code,
				"error", err,
			)
			response.Error(c, appErr.Code, "An unexpected error occurred. Please try again later.", nil)
			return
		}
		response.Error(c, appErr.Code, appErr.Message, nil)
	}
}
