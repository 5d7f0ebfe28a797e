package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
)

// LikeRepo implements LikeRepository using PostgreSQL.
type LikeRepo struct{ db *DB }

// NewLikeRepo constructs a like repository.
func NewLikeRepo(db *DB) *LikeRepo { return &LikeRepo{db: db} }

// Create records a like. A duplicate surfaces either as a raised uniqueness
// violation or as a conflict-absorbed zero-row insert, depending on the
// conflict clause the schema carries; both report errs.ErrConflict. A
// foreign-key failure (vanished post or user) is errs.ErrNotFound.
func (r *LikeRepo) Create(ctx context.Context, userID, postID uuid.UUID) error {
	const q = `
INSERT INTO likes (user_id, post_id)
VALUES ($1, $2)
ON CONFLICT (user_id, post_id) DO NOTHING`
	tag, err := r.db.Pool.Exec(ctx, q, userID, postID)
	if err != nil {
		return translateConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrConflict
	}
	return nil
}

// Delete removes a like. Zero rows affected means there was no such like.
func (r *LikeRepo) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	const q = `DELETE FROM likes WHERE user_id=$1 AND post_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, userID, postID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
