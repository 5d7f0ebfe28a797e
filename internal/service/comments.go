package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/model"
	"github.com/avekshin/microfeed/internal/repository"
	"github.com/avekshin/microfeed/internal/token"
)

// CommentService defines comment operations over posts.
type CommentService interface {
	// Create attaches a comment to a post as the caller.
	Create(ctx context.Context, claims *token.Claims, postID uuid.UUID, content string) (*model.Comment, error)
	// ListForPost returns a post's comments; an absent post is not-found.
	ListForPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
}

type CommentServiceImpl struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentService constructs CommentService.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) *CommentServiceImpl {
	return &CommentServiceImpl{comments: comments, posts: posts}
}

// Create inserts the comment; a post or author that vanished since the
// request began surfaces as not-found via the foreign-key translation.
func (s *CommentServiceImpl) Create(ctx context.Context, claims *token.Claims, postID uuid.UUID, content string) (*model.Comment, error) {
	if claims == nil {
		return nil, errs.ErrUnauthorized
	}
	if content == "" {
		return nil, errs.ErrBadRequest
	}
	cid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	c := &model.Comment{ID: cid, AuthorID: claims.UserID, PostID: postID, Content: content}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListForPost checks the post exists, then returns its comments.
func (s *CommentServiceImpl) ListForPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrNotFound
	}
	return s.comments.ListForPost(ctx, postID)
}
