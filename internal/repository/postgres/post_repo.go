package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/model"
)

// PostRepo implements PostRepository using PostgreSQL.
type PostRepo struct{ db *DB }

// NewPostRepo constructs a post repository.
func NewPostRepo(db *DB) *PostRepo { return &PostRepo{db: db} }

// Create inserts a new post row. A foreign-key failure means the author
// vanished between token issuance and now.
func (r *PostRepo) Create(ctx context.Context, p *model.Post) error {
	const q = `
INSERT INTO posts (id, author_id, content)
VALUES ($1, $2, $3)
RETURNING created_at`
	err := r.db.Pool.QueryRow(ctx, q, p.ID, p.AuthorID, p.Content).Scan(&p.CreatedAt)
	return translateConstraint(err)
}

// List returns posts with their like counts, newest first.
func (r *PostRepo) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	const q = `
SELECT p.id, p.author_id, p.content, p.created_at, COUNT(l.user_id) AS like_count
FROM posts p
LEFT JOIN likes l ON l.post_id = p.id
GROUP BY p.id
ORDER BY p.created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := r.db.Pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Content, &p.CreatedAt, &p.LikeCount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID loads a single post with its like count.
func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	const q = `
SELECT p.id, p.author_id, p.content, p.created_at, COUNT(l.user_id) AS like_count
FROM posts p
LEFT JOIN likes l ON l.post_id = p.id
WHERE p.id=$1
GROUP BY p.id`
	var p model.Post
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.AuthorID, &p.Content, &p.CreatedAt, &p.LikeCount)
	if err != nil {
		return nil, scanOne(err)
	}
	return &p, nil
}

// AuthorID returns the post's owning identity, queried fresh per decision.
func (r *PostRepo) AuthorID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	const q = `SELECT author_id FROM posts WHERE id=$1`
	var author uuid.UUID
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&author); err != nil {
		return uuid.Nil, scanOne(err)
	}
	return author, nil
}

// Exists reports whether the post is present.
func (r *PostRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM posts WHERE id=$1)`
	var ok bool
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Delete removes a post row. Zero rows affected means the target was absent.
func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM posts WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
