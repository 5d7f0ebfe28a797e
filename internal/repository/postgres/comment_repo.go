package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/model"
)

// CommentRepo implements CommentRepository using PostgreSQL.
type CommentRepo struct{ db *DB }

// NewCommentRepo constructs a comment repository.
func NewCommentRepo(db *DB) *CommentRepo { return &CommentRepo{db: db} }

// Create inserts a new comment row. A foreign-key failure covers both a
// vanished post and a vanished author.
func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	const q = `
INSERT INTO comments (id, author_id, post_id, content)
VALUES ($1, $2, $3, $4)
RETURNING created_at`
	err := r.db.Pool.QueryRow(ctx, q, c.ID, c.AuthorID, c.PostID, c.Content).Scan(&c.CreatedAt)
	return translateConstraint(err)
}

// ListForPost returns a post's comments, oldest first.
func (r *CommentRepo) ListForPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	const q = `
SELECT id, author_id, post_id, content, created_at
FROM comments
WHERE post_id=$1
ORDER BY created_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.AuthorID, &c.PostID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
