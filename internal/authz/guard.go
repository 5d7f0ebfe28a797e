// Package authz implements pure access-control gates over parsed claims.
// Gates never touch storage; ownership facts are fetched fresh by the caller
// for each decision.
package authz

import (
	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/token"
)

// RequireAdmin rejects any claim without the admin flag. Absent claims are
// unauthenticated, valid non-admin claims are forbidden; the two are never
// conflated.
func RequireAdmin(c *token.Claims) error {
	if c == nil {
		return errs.ErrUnauthorized
	}
	if !c.IsAdmin {
		return errs.ErrForbidden
	}
	return nil
}

// RequireOwnerOrAdmin allows the resource owner or any admin. Callers must
// establish that the resource exists before invoking the gate, so that
// non-existence is reported as not-found rather than forbidden.
func RequireOwnerOrAdmin(c *token.Claims, ownerID uuid.UUID) error {
	if c == nil {
		return errs.ErrUnauthorized
	}
	if c.UserID == ownerID || c.IsAdmin {
		return nil
	}
	return errs.ErrForbidden
}
