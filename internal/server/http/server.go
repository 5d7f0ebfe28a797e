// Package httpserver exposes the microfeed REST API handlers.
package httpserver

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avekshin/microfeed/internal/service"
	"github.com/avekshin/microfeed/internal/token"
)

// Server wires services into HTTP handlers.
type Server struct {
	log      *zap.Logger
	codec    *token.Codec
	auth     service.AuthService
	users    service.UserService
	posts    service.PostService
	comments service.CommentService
	likes    service.LikeService
}

// New constructs a Server with injected services.
func New(
	log *zap.Logger,
	codec *token.Codec,
	auth service.AuthService,
	users service.UserService,
	posts service.PostService,
	comments service.CommentService,
	likes service.LikeService,
) *Server {
	return &Server{
		log:      log,
		codec:    codec,
		auth:     auth,
		users:    users,
		posts:    posts,
		comments: comments,
		likes:    likes,
	}
}

// Router builds the gin engine with middleware and all routes. Reads on posts
// and comments are public; everything else sits behind the auth middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(s.recovery(), s.logging())

	r.POST("/auth/login", s.login)
	r.GET("/posts", s.listPosts)
	r.GET("/posts/:post_id", s.getPost)
	r.GET("/posts/:post_id/comments", s.listComments)

	auth := r.Group("/", s.authenticate)
	auth.GET("auth/me", s.me)
	auth.POST("users", s.createUser)
	auth.GET("users", s.listUsers)
	auth.PUT("users/:user_id", s.updateUser)
	auth.DELETE("users/:user_id", s.deleteUser)
	auth.POST("posts", s.createPost)
	auth.DELETE("posts/:post_id", s.deletePost)
	auth.POST("posts/:post_id/comments", s.createComment)
	auth.POST("posts/:post_id/like", s.likePost)
	auth.DELETE("posts/:post_id/like", s.unlikePost)

	return r
}

// pagination reads limit/offset query parameters with the fixed defaults.
func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		limit = 20
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}
	return limit, offset
}
