package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/model"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

// commentResponse keeps the post_id key as-is; clients already depend on it.
type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"authorId"`
	PostID    uuid.UUID `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCommentResponse(cm *model.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID,
		AuthorID:  cm.AuthorID,
		PostID:    cm.PostID,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}
}

func (s *Server) createComment(c *gin.Context) {
	id, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		s.writeError(c, errs.ErrNotFound)
		return
	}
	var body createCommentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.writeError(c, errs.ErrBadRequest)
		return
	}
	cm, err := s.comments.Create(c.Request.Context(), claimsFrom(c), id, body.Content)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCommentResponse(cm))
}

func (s *Server) listComments(c *gin.Context) {
	id, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		s.writeError(c, errs.ErrNotFound)
		return
	}
	comments, err := s.comments.ListForPost(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]commentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, out)
}
