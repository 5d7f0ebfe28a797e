// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/model"
)

// UserRepository provides CRUD access for user accounts.
type UserRepository interface {
	// Create inserts a new user and fills CreatedAt. A taken username or email
	// is errs.ErrConflict.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByEmail loads a user by email (login identifier).
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// List returns users ordered by creation time, newest first.
	List(ctx context.Context, limit, offset int) ([]model.User, error)
	// UpdateBio replaces the bio of an existing user and returns the updated row.
	UpdateBio(ctx context.Context, id uuid.UUID, bio *string) (*model.User, error)
	// Delete removes a user; an absent target is errs.ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
