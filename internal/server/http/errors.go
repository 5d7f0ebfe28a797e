package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avekshin/microfeed/internal/errs"
)

// writeError maps domain sentinels onto fixed status codes with a single JSON
// body. Internal causes are logged, never returned to the client.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": "Forbidden"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
	case errors.Is(err, errs.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"detail": "Conflict"})
	case errors.Is(err, errs.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid body"})
	default:
		s.log.Error("internal error",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

// abortError writes the error response and stops the handler chain.
func (s *Server) abortError(c *gin.Context, err error) {
	s.writeError(c, err)
	c.Abort()
}
