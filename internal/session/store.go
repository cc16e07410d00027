// Package session keeps the admin bearer token on the server, keyed by an
// opaque session id held in the browser cookie.
package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// KeyPrefix namespaces stored tokens.
const KeyPrefix = "adminToken:"

// ErrNotFound is returned by a Store for unknown or expired sessions.
var ErrNotFound = errors.New("session: not found")

type Store interface {
	Get(ctx context.Context, sid string) (string, error)
	Set(ctx context.Context, sid, token string, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
}

type memoryEntry struct {
	token   string
	expires time.Time
}

// MemoryStore keeps tokens in process. Sessions do not survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryStore) Get(_ context.Context, sid string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[KeyPrefix+sid]
	if !ok {
		return "", ErrNotFound
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, KeyPrefix+sid)
		return "", ErrNotFound
	}
	return e.token, nil
}

func (m *MemoryStore) Set(_ context.Context, sid, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{token: token}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.entries[KeyPrefix+sid] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	delete(m.entries, KeyPrefix+sid)
	m.mu.Unlock()
	return nil
}
