package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/repository"
	"github.com/avekshin/microfeed/internal/token"
)

// LikeService defines like/unlike operations.
type LikeService interface {
	// Like records the caller's like; a repeat like is a conflict.
	Like(ctx context.Context, claims *token.Claims, postID uuid.UUID) error
	// Unlike removes the caller's like; an absent like is not-found.
	Unlike(ctx context.Context, claims *token.Claims, postID uuid.UUID) error
}

type LikeServiceImpl struct {
	likes repository.LikeRepository
}

// NewLikeService constructs LikeService.
func NewLikeService(likes repository.LikeRepository) *LikeServiceImpl {
	return &LikeServiceImpl{likes: likes}
}

// Like delegates to storage; the repository reports a conflict for both the
// raised uniqueness violation and the absorbed zero-row insert, and not-found
// when the post or user vanished.
func (s *LikeServiceImpl) Like(ctx context.Context, claims *token.Claims, postID uuid.UUID) error {
	if claims == nil {
		return errs.ErrUnauthorized
	}
	return s.likes.Create(ctx, claims.UserID, postID)
}

// Unlike removes the like. Removing an already-removed like reports
// not-found, never success.
func (s *LikeServiceImpl) Unlike(ctx context.Context, claims *token.Claims, postID uuid.UUID) error {
	if claims == nil {
		return errs.ErrUnauthorized
	}
	return s.likes.Delete(ctx, claims.UserID, postID)
}
