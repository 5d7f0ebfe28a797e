package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row; CreatedAt is assigned by the database.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, username, email, password_hash, is_admin, bio)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at`
	err := r.db.Pool.QueryRow(ctx, q, u.ID, u.Username, u.Email, u.PasswordHash, u.IsAdmin, u.Bio).
		Scan(&u.CreatedAt)
	return translateConstraint(err)
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `
SELECT id, username, email, password_hash, is_admin, bio, created_at
FROM users WHERE id=$1`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT id, username, email, password_hash, is_admin, bio, created_at
FROM users WHERE email=$1`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, email))
}

// List returns users ordered by creation time, newest first.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	const q = `
SELECT id, username, email, password_hash, is_admin, bio, created_at
FROM users
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := r.db.Pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.Bio, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpdateBio replaces the bio and returns the updated row.
func (r *UserRepo) UpdateBio(ctx context.Context, id uuid.UUID, bio *string) (*model.User, error) {
	const q = `
UPDATE users SET bio=$2
WHERE id=$1
RETURNING id, username, email, password_hash, is_admin, bio, created_at`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, id, bio))
}

// Delete removes a user row. Zero rows affected means the target was absent.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *UserRepo) scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.Bio, &u.CreatedAt); err != nil {
		return nil, scanOne(err)
	}
	return &u, nil
}
