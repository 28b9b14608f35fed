package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeops/internal/core/apperror"
	"storeops/pkg/logger"
)

// ErrorHandler transforms errors registered on the Gin context into the
// JSON error envelope. In production mode internal error details are
// logged but not returned to the client.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// Response already written by the handler, do not override.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				logger.Error(c.Request.Context(), "request failed",
					"code", appErr.Code,
					"error", err,
				)
			}

			body := gin.H{
				"success": false,
				"message": appErr.Message,
			}
			if len(appErr.FieldErrors) > 0 {
				body["errors"] = appErr.FieldErrors
			}
			if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.Err != nil && !production {
				body["error"] = appErr.Err.Error()
			}

			c.JSON(appErr.HTTPStatus, body)
			return
		}

		logger.Error(c.Request.Context(), "unhandled error", "error", err)

		body := gin.H{
			"success": false,
			"message": "internal server error",
		}
		if !production {
			body["error"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}
