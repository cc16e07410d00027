package session

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/auth"
	"storefront/internal/shopapi"
)

var (
	ErrMissingCredentials = errors.New("session: username and password are required")
	ErrInvalidCredentials = errors.New("session: invalid credentials")
	ErrConnection         = errors.New("session: shop api unreachable")
)

// LoginError carries a server-provided login failure message.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string { return "session: login rejected: " + e.Message }

func (e *LoginError) Unwrap() error { return e.Err }

// LoginMessage is the text shown on the login form for err.
func LoginMessage(err error) string {
	var loginErr *LoginError
	switch {
	case errors.As(err, &loginErr):
		return loginErr.Message
	case errors.Is(err, ErrMissingCredentials):
		return "Both fields are required"
	case errors.Is(err, ErrConnection):
		return "Server connection error"
	default:
		return "Invalid credentials"
	}
}

// LoginAPI is the login endpoint of the shop API.
type LoginAPI interface {
	Login(ctx context.Context, creds shopapi.Credentials) (string, error)
}

// Gate is the admin login boundary.
type Gate struct {
	api      LoginAPI
	sessions *Manager
}

func NewGate(api LoginAPI, sessions *Manager) *Gate {
	return &Gate{api: api, sessions: sessions}
}

// Login checks both fields are present, exchanges them for a token and
// opens a session. LoginMessage renders any error it returns.
func (g *Gate) Login(ctx context.Context, username, password string) (Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return Session{}, ErrMissingCredentials
	}
	token, err := g.api.Login(ctx, shopapi.Credentials{Username: strings.TrimSpace(username), Password: password})
	switch {
	case err == nil:
	case errors.Is(err, shopapi.ErrNetwork):
		return Session{}, ErrConnection
	case errors.Is(err, shopapi.ErrNoToken):
		return Session{}, ErrInvalidCredentials
	default:
		if msg := shopapi.Message(err, ""); msg != "" {
			return Session{}, &LoginError{Message: msg, Err: err}
		}
		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	s, err := g.sessions.Create(ctx, token)
	if errors.Is(err, auth.ErrTokenExpired) || errors.Is(err, auth.ErrTokenInvalid) {
		return Session{}, ErrInvalidCredentials
	}
	return s, err
}

// Check returns the session for sid or ErrNoSession.
func (g *Gate) Check(ctx context.Context, sid string) (Session, error) {
	return g.sessions.Lookup(ctx, sid)
}

func (g *Gate) Logout(ctx context.Context, sid string) {
	g.sessions.Invalidate(ctx, sid, ReasonLogout)
}

// Unauthorized ends the session after the API rejected its token.
func (g *Gate) Unauthorized(ctx context.Context, sid string) {
	g.sessions.Invalidate(ctx, sid, ReasonUnauthorized)
}
