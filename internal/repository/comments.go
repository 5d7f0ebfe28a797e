package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/model"
)

// CommentRepository provides access to post comments.
type CommentRepository interface {
	// Create inserts a new comment and fills CreatedAt. A vanished post or
	// author is errs.ErrNotFound.
	Create(ctx context.Context, c *model.Comment) error
	// ListForPost returns a post's comments, oldest first.
	ListForPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
}
