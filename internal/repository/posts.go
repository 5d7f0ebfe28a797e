package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/model"
)

// PostRepository provides access to posts and their like counts.
type PostRepository interface {
	// Create inserts a new post and fills CreatedAt. A vanished author is
	// errs.ErrNotFound.
	Create(ctx context.Context, p *model.Post) error
	// List returns posts with like counts, newest first.
	List(ctx context.Context, limit, offset int) ([]model.Post, error)
	// GetByID loads a single post with its like count.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	// AuthorID returns the owning identity of a post. It is queried fresh for
	// every authorization decision, never cached.
	AuthorID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	// Exists reports whether the post is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// Delete removes a post; an absent target is errs.ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
