// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User is an account row. PasswordHash is only ever read for verification and
// written at creation time.
type User struct {
	ID           uuid.UUID
	Username     string // unique
	Email        string // unique, login identifier
	PasswordHash []byte // Argon2id(password, configured salt)
	IsAdmin      bool
	Bio          *string
	CreatedAt    time.Time
}

// CreateUser carries the fields of a user-creation request.
type CreateUser struct {
	Username string
	Email    string
	Password string
}

// Post is a single authored post with its current like count.
type Post struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	LikeCount int64
	CreatedAt time.Time
}

// Comment is a single comment attached to a post.
type Comment struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	PostID    uuid.UUID
	Content   string
	CreatedAt time.Time
}
