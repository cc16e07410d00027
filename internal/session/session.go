package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/auth"
)

// ErrNoSession means the request carries no usable admin session.
var ErrNoSession = errors.New("session: no admin session")

// Reason says why a session ended.
type Reason string

const (
	ReasonLogout       Reason = "logout"
	ReasonUnauthorized Reason = "unauthorized"
	ReasonExpired      Reason = "expired"
)

// Event is published whenever a session ends.
type Event struct {
	SessionID string
	Reason    Reason
}

type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
}

// Manager owns admin sessions. Every way a session can end goes through
// Invalidate so subscribers see a single event stream.
type Manager struct {
	store  Store
	auth   auth.Authenticator
	ttl    time.Duration
	logger *zap.SugaredLogger

	mu   sync.RWMutex
	subs []func(Event)
}

func NewManager(store Store, authenticator auth.Authenticator, ttl time.Duration, logger *zap.SugaredLogger) *Manager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if authenticator == nil {
		authenticator = auth.NewJWTAuthenticator("")
	}
	return &Manager{store: store, auth: authenticator, ttl: ttl, logger: logger}
}

// Subscribe registers fn for invalidation events.
func (m *Manager) Subscribe(fn func(Event)) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	m.mu.Unlock()
}

// Create stores token under a fresh session id. The stored TTL is the
// shorter of the configured TTL and the token's own expiry.
func (m *Manager) Create(ctx context.Context, token string) (Session, error) {
	claims, err := m.auth.Inspect(token)
	if err != nil {
		return Session{}, err
	}
	ttl := m.ttl
	if !claims.ExpiresAt.IsZero() {
		if left := time.Until(claims.ExpiresAt); ttl <= 0 || left < ttl {
			ttl = left
		}
	}
	s := Session{ID: uuid.NewString(), Token: token}
	if ttl > 0 {
		s.ExpiresAt = time.Now().Add(ttl)
	}
	if err := m.store.Set(ctx, s.ID, token, ttl); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	return s, nil
}

// Lookup returns the live session for sid. An expired token ends the
// session and yields ErrNoSession.
func (m *Manager) Lookup(ctx context.Context, sid string) (Session, error) {
	if sid == "" {
		return Session{}, ErrNoSession
	}
	token, err := m.store.Get(ctx, sid)
	if errors.Is(err, ErrNotFound) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, err
	}
	claims, err := m.auth.Inspect(token)
	if err != nil {
		reason := ReasonUnauthorized
		if errors.Is(err, auth.ErrTokenExpired) {
			reason = ReasonExpired
		}
		m.Invalidate(ctx, sid, reason)
		return Session{}, ErrNoSession
	}
	return Session{ID: sid, Token: token, ExpiresAt: claims.ExpiresAt}, nil
}

// Invalidate removes the session and notifies subscribers.
func (m *Manager) Invalidate(ctx context.Context, sid string, reason Reason) {
	if sid == "" {
		return
	}
	if err := m.store.Delete(ctx, sid); err != nil {
		m.logger.Errorw("failed to delete admin session", "reason", reason, "error", err)
	}
	m.logger.Infow("admin session ended", "reason", reason)

	m.mu.RLock()
	subs := make([]func(Event), len(m.subs))
	copy(subs, m.subs)
	m.mu.RUnlock()
	for _, fn := range subs {
		fn(Event{SessionID: sid, Reason: reason})
	}
}
