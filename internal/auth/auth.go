package auth

import (
	"errors"
	"time"
)

var (
	ErrTokenExpired = errors.New("auth: token expired")
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// Claims is what the storefront learns from an admin token it did not
// issue. ExpiresAt is zero when the token carries no expiry.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
	// Opaque is set for tokens that are not JWTs.
	Opaque bool
}

type Authenticator interface {
	Inspect(token string) (Claims, error)
}
