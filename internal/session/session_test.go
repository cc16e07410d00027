package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"storefront/internal/auth"
	"storefront/internal/shopapi"
)

type fakeLogin struct {
	token string
	err   error
	calls int
}

func (f *fakeLogin) Login(context.Context, shopapi.Credentials) (string, error) {
	f.calls++
	return f.token, f.err
}

func newGate(api LoginAPI, store Store) (*Gate, *Manager) {
	m := NewManager(store, auth.NewJWTAuthenticator(""), time.Hour, nil)
	return NewGate(api, m), m
}

func TestLoginStoresTokenAndLogoutClearsIt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	g, m := newGate(&fakeLogin{token: "tok-123"}, store)

	var events []Event
	m.Subscribe(func(e Event) { events = append(events, e) })

	s, err := g.Login(ctx, "admin", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got, _ := store.Get(ctx, s.ID); got != "tok-123" {
		t.Fatalf("stored token = %q", got)
	}
	if checked, err := g.Check(ctx, s.ID); err != nil || checked.Token != "tok-123" {
		t.Fatalf("Check = %+v, %v", checked, err)
	}

	g.Logout(ctx, s.ID)
	if _, err := g.Check(ctx, s.ID); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Check after logout err = %v", err)
	}
	if len(events) != 1 || events[0].Reason != ReasonLogout {
		t.Fatalf("events = %+v", events)
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		user     string
		api      *fakeLogin
		wantMsg  string
		wantCall bool
	}{
		{"missing password", "admin", &fakeLogin{token: "x"}, "Both fields are required", false},
		{"server message", "admin", &fakeLogin{err: &shopapi.APIError{Status: 401, Message: "Wrong password"}}, "Wrong password", true},
		{"bare 401", "admin", &fakeLogin{err: &shopapi.APIError{Status: 401}}, "Invalid credentials", true},
		{"no token", "admin", &fakeLogin{err: shopapi.ErrNoToken}, "Invalid credentials", true},
		{"network", "admin", &fakeLogin{err: shopapi.ErrNetwork}, "Server connection error", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			g, _ := newGate(tt.api, store)
			password := "pw"
			if tt.name == "missing password" {
				password = "  "
			}
			_, err := g.Login(ctx, tt.user, password)
			if err == nil {
				t.Fatal("Login succeeded")
			}
			if got := LoginMessage(err); got != tt.wantMsg {
				t.Fatalf("LoginMessage = %q, want %q", got, tt.wantMsg)
			}
			if (tt.api.calls > 0) != tt.wantCall {
				t.Fatalf("api calls = %d", tt.api.calls)
			}
			if len(store.entries) != 0 {
				t.Fatal("failed login stored a token")
			}
		})
	}
}

func TestExpiredTokenEndsSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store, auth.NewJWTAuthenticator(""), time.Hour, nil)

	var mu sync.Mutex
	var reasons []Reason
	m.Subscribe(func(e Event) {
		mu.Lock()
		reasons = append(reasons, e.Reason)
		mu.Unlock()
	})

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()}).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	_ = store.Set(ctx, "sid", expired, 0)
	if _, err := m.Lookup(ctx, "sid"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Lookup err = %v", err)
	}
	if len(reasons) != 1 || reasons[0] != ReasonExpired {
		t.Fatalf("reasons = %v", reasons)
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }
	_ = store.Set(ctx, "sid", "tok", time.Minute)

	now = now.Add(2 * time.Minute)
	if _, err := store.Get(ctx, "sid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after ttl err = %v", err)
	}
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb, err := RedisConfig{URL: "redis://" + mr.Addr()}.New(ctx)
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	defer rdb.Close()
	store := NewRedisStore(rdb)

	if err := store.Set(ctx, "sid", "tok", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !mr.Exists(KeyPrefix + "sid") {
		t.Fatalf("key %q not written", KeyPrefix+"sid")
	}
	if got, err := store.Get(ctx, "sid"); err != nil || got != "tok" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := store.Get(ctx, "sid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after ttl err = %v", err)
	}

	_ = store.Set(ctx, "sid2", "tok", 0)
	if err := store.Delete(ctx, "sid2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "sid2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete err = %v", err)
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()
	_, err := NewRedisStore(rdb).Get(context.Background(), "sid")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want connection error", err)
	}
}
