package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthenticator inspects admin tokens issued by the shop API. With a
// secret the HS256 signature is verified; without one only the expiry is
// read.
type JWTAuthenticator struct {
	secret string
	now    func() time.Time
}

func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: secret, now: time.Now}
}

// Inspect returns the token's claims, ErrTokenExpired once exp has passed,
// or ErrTokenInvalid when a configured signature check fails. Tokens that
// are not JWTs are accepted as opaque when no secret is configured.
func (a *JWTAuthenticator) Inspect(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrTokenInvalid
	}

	claims := jwt.MapClaims{}
	if a.secret != "" {
		_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(a.secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithTimeFunc(a.now))
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		case err != nil:
			return Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
		}
		return a.claims(claims)
	}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Claims{Opaque: true}, nil
	}
	return a.claims(claims)
}

func (a *JWTAuthenticator) claims(mc jwt.MapClaims) (Claims, error) {
	var c Claims
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	exp, err := mc.GetExpirationTime()
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if exp != nil {
		c.ExpiresAt = exp.Time
		if !a.now().Before(exp.Time) {
			return Claims{}, ErrTokenExpired
		}
	}
	return c, nil
}
