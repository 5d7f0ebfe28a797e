package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/model"
)

type createPostRequest struct {
	Content string `json:"content"`
}

type postResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"authorId"`
	Content   string    `json:"content"`
	LikeCount int64     `json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPostResponse(p *model.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		LikeCount: p.LikeCount,
		CreatedAt: p.CreatedAt,
	}
}

func (s *Server) createPost(c *gin.Context) {
	var body createPostRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.writeError(c, errs.ErrBadRequest)
		return
	}
	p, err := s.posts.Create(c.Request.Context(), claimsFrom(c), body.Content)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPostResponse(p))
}

func (s *Server) listPosts(c *gin.Context) {
	limit, offset := pagination(c)
	posts, err := s.posts.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]postResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getPost(c *gin.Context) {
	id, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		s.writeError(c, errs.ErrNotFound)
		return
	}
	p, err := s.posts.Get(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(p))
}

func (s *Server) deletePost(c *gin.Context) {
	id, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		s.writeError(c, errs.ErrNotFound)
		return
	}
	if err := s.posts.Delete(c.Request.Context(), claimsFrom(c), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
