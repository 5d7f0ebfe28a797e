package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/authz"
	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/model"
	"github.com/avekshin/microfeed/internal/repository"
	"github.com/avekshin/microfeed/internal/token"
)

// PostService defines post operations. Reads are public; writes require a
// valid claim.
type PostService interface {
	// Create publishes a post authored by the caller.
	Create(ctx context.Context, claims *token.Claims, content string) (*model.Post, error)
	// List returns a page of posts with like counts.
	List(ctx context.Context, limit, offset int) ([]model.Post, error)
	// Get returns a single post with its like count.
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	// Delete removes a post; only its owner or an admin may do so.
	Delete(ctx context.Context, claims *token.Claims, id uuid.UUID) error
}

type PostServiceImpl struct {
	posts repository.PostRepository
}

// NewPostService constructs PostService.
func NewPostService(posts repository.PostRepository) *PostServiceImpl {
	return &PostServiceImpl{posts: posts}
}

// Create publishes a post. New posts always report zero likes.
func (s *PostServiceImpl) Create(ctx context.Context, claims *token.Claims, content string) (*model.Post, error) {
	if claims == nil {
		return nil, errs.ErrUnauthorized
	}
	if content == "" {
		return nil, errs.ErrBadRequest
	}
	pid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	p := &model.Post{ID: pid, AuthorID: claims.UserID, Content: content}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns a page of posts, applying defaults for absent bounds.
func (s *PostServiceImpl) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.posts.List(ctx, limit, offset)
}

// Get returns a single post.
func (s *PostServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Delete removes a post. The ownership fact is fetched fresh from storage,
// and existence is checked strictly before authorization: deleting an absent
// post is not-found for every caller, never forbidden.
func (s *PostServiceImpl) Delete(ctx context.Context, claims *token.Claims, id uuid.UUID) error {
	if claims == nil {
		return errs.ErrUnauthorized
	}
	ownerID, err := s.posts.AuthorID(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.RequireOwnerOrAdmin(claims, ownerID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
