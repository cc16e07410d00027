package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"storefront/internal/auth"
	"storefront/internal/catalog"
	"storefront/internal/imageurl"
	"storefront/internal/ratelimiter"
	"storefront/internal/session"
	"storefront/internal/shopapi"
)

// NewLogger creates a new zap logger with color.
func NewLogger(env string) (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel
	if env == "development" {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)
	return zap.New(core).Sugar(), nil
}

var version = "0.3.0"

//	@title			Storefront API
//	@description	Web tier of a handmade crochet and embroidery shop.

//	@contact.name	Storefront Support

//	@BasePath					/
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						sid
//	@description				Admin session cookie set by POST /admin/login.

func main() {
	// .env is optional outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env file: %v", err)
	}

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("invalid environment config: %v", err)
	}

	logger, err := NewLogger(cfg.Env)
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Shop API
	api := shopapi.NewClient(shopapi.Config{
		BaseURL:     cfg.API.BaseURL,
		FallbackURL: cfg.API.FallbackURL,
		Timeout:     cfg.API.Timeout,
		Retries:     cfg.API.Retries,
		Logger:      logger.Named("shopapi"),
	})

	// Sessions
	var store session.Store
	if cfg.Redis.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := cfg.Redis.client(ctx)
		cancel()
		if err != nil {
			logger.Fatalw("redis connection failed", "error", err)
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb)
		logger.Info("admin sessions stored in redis")
	} else {
		store = session.NewMemoryStore()
		logger.Warn("REDIS_URL not set, admin sessions kept in memory")
	}
	sessions := session.NewManager(store, auth.NewJWTAuthenticator(cfg.Auth.TokenSecret), cfg.SessionTTL, logger.Named("session"))
	sessions.Subscribe(func(e session.Event) {
		logger.Debugw("admin session invalidated", "reason", e.Reason)
	})

	// Cloudinary
	images, err := imageurl.NewFromURL(cfg.CloudinaryURL, logger.Named("imageurl"))
	if err != nil {
		logger.Fatal(err)
	}

	// Rate limiter
	loginLimiter := ratelimiter.NewFixedWindowLimiter(cfg.Login.RateLimit, cfg.Login.RateWindow)
	defer loginLimiter.Close()

	app := &application{
		config:      cfg,
		logger:      logger,
		api:         api,
		catalog:     catalog.NewService(api, logger.Named("catalog")),
		gate:        session.NewGate(api, sessions),
		images:      images,
		rateLimiter: loginLimiter,
	}

	//Metrics collected http://localhost:8080/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
