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

const (
	defaultListLimit = 20
)

// UserService defines admin-only user management operations.
type UserService interface {
	// Create registers a new user with a freshly hashed credential.
	Create(ctx context.Context, claims *token.Claims, in model.CreateUser) (*model.User, error)
	// List returns a page of users.
	List(ctx context.Context, claims *token.Claims, limit, offset int) ([]model.User, error)
	// UpdateBio replaces a user's bio.
	UpdateBio(ctx context.Context, claims *token.Claims, id uuid.UUID, bio *string) (*model.User, error)
	// Delete removes a user.
	Delete(ctx context.Context, claims *token.Claims, id uuid.UUID) error
}

type UserServiceImpl struct {
	users  repository.UserRepository
	hasher PasswordHasher
}

// NewUserService constructs UserService.
func NewUserService(users repository.UserRepository, hasher PasswordHasher) *UserServiceImpl {
	return &UserServiceImpl{users: users, hasher: hasher}
}

// Create hashes the password off the request path and inserts the account.
// Every user-management operation is admin-gated unconditionally.
func (s *UserServiceImpl) Create(ctx context.Context, claims *token.Claims, in model.CreateUser) (*model.User, error) {
	if err := authz.RequireAdmin(claims); err != nil {
		return nil, err
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, errs.ErrBadRequest
	}
	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:           uid,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// List returns a page of users, applying defaults for absent bounds.
func (s *UserServiceImpl) List(ctx context.Context, claims *token.Claims, limit, offset int) ([]model.User, error) {
	if err := authz.RequireAdmin(claims); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.users.List(ctx, limit, offset)
}

// UpdateBio replaces the target user's bio.
func (s *UserServiceImpl) UpdateBio(ctx context.Context, claims *token.Claims, id uuid.UUID, bio *string) (*model.User, error) {
	if err := authz.RequireAdmin(claims); err != nil {
		return nil, err
	}
	return s.users.UpdateBio(ctx, id, bio)
}

// Delete removes the target user.
func (s *UserServiceImpl) Delete(ctx context.Context, claims *token.Claims, id uuid.UUID) error {
	if err := authz.RequireAdmin(claims); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
