package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/session"
)

type config struct {
	Addr        string        `envconfig:"ADDR" default:":8080"`
	ExternalURL string        `envconfig:"EXTERNAL_URL" default:"localhost:8080"`
	Env         string        `envconfig:"ENV" default:"development"`
	CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"https://*,http://*"`
	PageLimit   int           `envconfig:"PAGE_LIMIT" default:"6"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	CloudinaryURL string `envconfig:"CLOUDINARY_URL"`

	// Nested structs are read with their field name as prefix, e.g. API_BASE_URL.
	API   apiConfig
	Redis redisConfig
	Auth  authConfig
	Login loginConfig
}

type apiConfig struct {
	BaseURL     string        `split_words:"true" required:"true"`
	FallbackURL string        `split_words:"true"`
	Timeout     time.Duration `default:"10s"`
	Retries     int           `default:"2"`
}

type redisConfig struct {
	URL          string
	ReadTimeout  time.Duration `split_words:"true" default:"3s"`
	WriteTimeout time.Duration `split_words:"true" default:"3s"`
	DialTimeout  time.Duration `split_words:"true" default:"5s"`
}

func (c redisConfig) client(ctx context.Context) (*redis.Client, error) {
	return session.RedisConfig{
		URL:          c.URL,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
		DialTimeout:  c.DialTimeout,
	}.New(ctx)
}

type authConfig struct {
	// TokenSecret enables signature checks on admin tokens when set.
	TokenSecret  string `split_words:"true"`
	SecureCookie bool   `split_words:"true" default:"false"`
}

type loginConfig struct {
	RateLimit  int           `split_words:"true" default:"10"`
	RateWindow time.Duration `split_words:"true" default:"1m"`
}
