// Package service contains application services orchestrating gates and storage.
package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/model"
	"github.com/avekshin/microfeed/internal/repository"
	"github.com/avekshin/microfeed/internal/token"
)

// PasswordHasher dispatches hashing to a bounded worker pool so CPU-bound
// work stays off the request goroutine. Implemented by *crypto.Pool.
type PasswordHasher interface {
	// Hash computes the stored hash for a new credential.
	Hash(ctx context.Context, password string) ([]byte, error)
	// Verify reports whether password matches the stored hash; a malformed
	// stored hash is a non-match, never an error.
	Verify(ctx context.Context, password string, expected []byte) (bool, error)
}

// AuthService defines authentication and bootstrap operations.
type AuthService interface {
	// Login checks credentials and returns a signed access token.
	Login(ctx context.Context, email, password string) (string, error)
	// Me returns the account behind a parsed claim.
	Me(ctx context.Context, claims *token.Claims) (*model.User, error)
	// EnsureAdmin creates the bootstrap admin account if configured and absent.
	EnsureAdmin(ctx context.Context) error
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	codec  *token.Codec
	hasher PasswordHasher

	adminUser     string
	adminPassword string
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, codec *token.Codec, hasher PasswordHasher, adminUser, adminPassword string) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:         users,
		codec:         codec,
		hasher:        hasher,
		adminUser:     adminUser,
		adminPassword: adminPassword,
	}
}

// Login verifies the password off the request path and issues a token
// carrying the subject id and admin flag. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.ErrUnauthorized
		}
		return "", err
	}
	ok, err := s.hasher.Verify(ctx, password, u.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errs.ErrUnauthorized
	}
	signed, _, err := s.codec.Issue(u.ID, u.IsAdmin)
	return signed, err
}

// Me loads the subject's account. A subject that no longer exists is
// unauthenticated, not merely missing.
func (s *AuthServiceImpl) Me(ctx context.Context, claims *token.Claims) (*model.User, error) {
	if claims == nil {
		return nil, errs.ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}

// EnsureAdmin seeds the admin account from the bootstrap credentials. A no-op
// when the credentials are unset or the account already exists.
func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context) error {
	if s.adminUser == "" || s.adminPassword == "" {
		return nil
	}
	hash, err := s.hasher.Hash(ctx, s.adminPassword)
	if err != nil {
		return err
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return err
	}
	u := &model.User{
		ID:           uid,
		Username:     s.adminUser,
		Email:        s.adminUser,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil
		}
		return err
	}
	return nil
}
