package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/savings-service/internal/domain/dto"
	"github.com/guttosm/savings-service/internal/logger"
)

// ErrorHandler returns a middleware that handles gin context errors.
// Handlers that already wrote a response only get their error logged.
// Otherwise a 500 envelope is written, or a 504 for deadline errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		event := log.Error()
		if status := c.Writer.Status(); c.Writer.Written() && status < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("errors", len(c.Errors)).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		status, code, message := http.StatusInternalServerError, dto.ErrCodeInternal, dto.MsgInternalError
		if errors.Is(err.Err, context.DeadlineExceeded) {
			status, code, message = http.StatusGatewayTimeout, dto.ErrCodeTimeout, dto.MsgRequestTimeout
		}
		c.JSON(status, dto.NewError(code, message).WithRequestID(requestID))
	}
}
