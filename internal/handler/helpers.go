package handler

import (
	"errors"
	"io"
	"net/http"

	"chatter-api/internal/services"
	chatter_errors "chatter-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst. An empty body leaves dst
// untouched so the service reports the missing fields itself.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(chatter_errors.Validation("invalid request body"))
		return false
	}
	return true
}

// respond writes the outcome's data, or its notice as a bare JSON string.
func respond[T any](c *gin.Context, out services.Outcome[T]) {
	if out.HasNotice() {
		c.JSON(http.StatusOK, out.Notice)
		return
	}
	c.JSON(http.StatusOK, out.Data)
}

// fail hands err to the error middleware, which owns the response.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}
