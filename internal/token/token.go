// Package token implements the signed, time-bounded identity claim codec.
// The codec performs no I/O and is pure given the shared secret.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/avekshin/microfeed/internal/errs"
)

// Claims is a parsed identity claim. Immutable once issued; it exists only for
// the lifetime of the signed token string and is never persisted server-side.
type Claims struct {
	UserID    uuid.UUID
	IsAdmin   bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// wireClaims is the JWT payload layout: sub, is_admin, iat, exp.
type wireClaims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// Codec issues and parses HS256 tokens with a fixed lifetime.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec constructs a codec from the shared secret and token lifetime.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// Issue encodes and signs a claim for the given subject. Expiry is always
// issuedAt plus the configured lifetime.
func (c *Codec) Issue(userID uuid.UUID, isAdmin bool) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(c.ttl)
	wc := wireClaims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, wc)
	signed, err := tok.SignedString(c.secret)
	return signed, exp, err
}

// Parse verifies signature and expiry. Bad signature, malformed structure and
// expired token all collapse to errs.ErrUnauthorized; callers never learn
// which case it was.
func (c *Codec) Parse(tokenStr string) (*Claims, error) {
	var wc wireClaims
	parsed, err := jwt.ParseWithClaims(tokenStr, &wc, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, errs.ErrUnauthorized
	}

	id, err := uuid.FromString(wc.Subject)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}
	cl := &Claims{UserID: id, IsAdmin: wc.IsAdmin}
	if wc.IssuedAt != nil {
		cl.IssuedAt = wc.IssuedAt.Time
	}
	if wc.ExpiresAt != nil {
		cl.ExpiresAt = wc.ExpiresAt.Time
	}
	return cl, nil
}

// BearerToken extracts the token segment from an Authorization header value of
// the form "<scheme> <token>". A missing header or token segment is
// errs.ErrUnauthorized.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", errs.ErrUnauthorized
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		return "", errs.ErrUnauthorized
	}
	return strings.TrimSpace(parts[1]), nil
}
