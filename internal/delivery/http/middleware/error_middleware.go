package middleware

import (
	"errors"
	"net/http"

	"ai-marketing-backend/internal/delivery/http/response"
	"ai-marketing-backend/internal/domain"
	"ai-marketing-backend/pkg/apperror"
	"ai-marketing-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"request_id", c.GetString("RequestID"),
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error", "request_id", c.GetString("RequestID"), "error", err)
		response.Error(c, http.StatusInternalServerError, domain.MsgInternalError)
	}
}

// Recovery turns panics into the standard 500 envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered", "request_id", c.GetString("RequestID"), "panic", recovered)
		response.Error(c, http.StatusInternalServerError, domain.MsgInternalError)
		c.Abort()
	})
}
