package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
)

func (s *Server) likePost(c *gin.Context) {
	id, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		s.writeError(c, errs.ErrNotFound)
		return
	}
	if err := s.likes.Like(c.Request.Context(), claimsFrom(c), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) unlikePost(c *gin.Context) {
	id, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		s.writeError(c, errs.ErrNotFound)
		return
	}
	if err := s.likes.Unlike(c.Request.Context(), claimsFrom(c), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
