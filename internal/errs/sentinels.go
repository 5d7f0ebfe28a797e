// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service/transport layers.
var (
	// ErrNotFound indicates the requested entity, or an entity it references,
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a duplicate action (e.g. liking the same post twice
	// or reusing a taken username/email).
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized indicates missing, malformed, or expired authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates a valid caller with insufficient privilege.
	ErrForbidden = errors.New("forbidden")

	// ErrBadRequest indicates malformed input rejected before storage.
	ErrBadRequest = errors.New("bad request")
)
