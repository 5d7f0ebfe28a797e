package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/model"
)

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Bio *string `json:"bio"`
}

func (s *Server) createUser(c *gin.Context) {
	var body createUserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.writeError(c, errs.ErrBadRequest)
		return
	}
	u, err := s.users.Create(c.Request.Context(), claimsFrom(c), model.CreateUser{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(u))
}

func (s *Server) listUsers(c *gin.Context) {
	limit, offset := pagination(c)
	users, err := s.users.List(c.Request.Context(), claimsFrom(c), limit, offset)
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) updateUser(c *gin.Context) {
	id, err := uuid.FromString(c.Param("user_id"))
	if err != nil {
		s.writeError(c, errs.ErrNotFound)
		return
	}
	var body updateUserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.writeError(c, errs.ErrBadRequest)
		return
	}
	u, err := s.users.UpdateBio(c.Request.Context(), claimsFrom(c), id, body.Bio)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

func (s *Server) deleteUser(c *gin.Context) {
	id, err := uuid.FromString(c.Param("user_id"))
	if err != nil {
		s.writeError(c, errs.ErrNotFound)
		return
	}
	if err := s.users.Delete(c.Request.Context(), claimsFrom(c), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
