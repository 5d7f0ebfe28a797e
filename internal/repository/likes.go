package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// LikeRepository records which users like which posts.
type LikeRepository interface {
	// Create records a like. A duplicate like is errs.ErrConflict whether the
	// store raises a uniqueness violation or silently absorbs the insert; a
	// vanished post or user is errs.ErrNotFound.
	Create(ctx context.Context, userID, postID uuid.UUID) error
	// Delete removes a like; an absent like is errs.ErrNotFound.
	Delete(ctx context.Context, userID, postID uuid.UUID) error
}
