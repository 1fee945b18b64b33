package middleware

import (
	"net/http"

	"chatter-api/internal/transport/httpdto"
	chatter_errors "chatter-api/pkg/errors"
	"chatter-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns the last error a handler recorded into a
// {status, message} body. Anything unrecognised becomes a 500.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, message := chatter_errors.StatusOf(err)
		if l != nil && status >= http.StatusInternalServerError {
			l.WithContext(c.Request.Context()).Errorf("request error: %s", err.Error())
		}
		c.JSON(status, httpdto.NewErrorResponse(status, message))
	}
}

// Recovery answers a panicking handler with the same 500 body.
func Recovery(l *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if l != nil {
			l.WithContext(c.Request.Context()).Errorf("panic recovered: %v", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			httpdto.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
	})
}

// NotFound serves every unmatched route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(http.StatusNotFound, "404 not found"))
}
