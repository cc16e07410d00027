package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"storefront/docs" //this is required to generate swagger docs
	"storefront/internal/catalog"
	"storefront/internal/imageurl"
	"storefront/internal/ratelimiter"
	"storefront/internal/session"
	"storefront/internal/shopapi"
)

// shopAPI is everything the handlers call on the shop REST API.
type shopAPI interface {
	catalog.API
	CreateProduct(ctx context.Context, token string, form *shopapi.Form) (shopapi.Product, error)
	UpdateProduct(ctx context.Context, token, id string, form *shopapi.Form) (shopapi.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
	CreateReview(ctx context.Context, token string, r shopapi.NewReview) (shopapi.Review, error)
	UpdateReview(ctx context.Context, token, id string, u shopapi.ReviewUpdate) (shopapi.Review, error)
	DeleteReview(ctx context.Context, token, id string) error
}

type application struct {
	config      config
	logger      *zap.SugaredLogger
	api         shopAPI
	catalog     *catalog.Service
	gate        *session.Gate
	images      *imageurl.Rewriter
	rateLimiter ratelimiter.Limiter
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", app.healthCheckHandler)
	r.Get("/debug/vars", expvar.Handler().ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Get("/", app.homeHandler)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", app.listProductsHandler)
		r.Get("/search", app.searchProductsHandler)
		r.Get("/{productID}", app.productDetailHandler)
	})
	r.Get("/product/{slug}/{productID}", app.productDetailHandler)
	r.Get("/crochet", app.tabProductsHandler(catalog.TabCrochet))
	r.Get("/embroidery", app.tabProductsHandler(catalog.TabEmbroidery))
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", app.listCategoriesHandler)
		r.Get("/{category}", app.categoryPageHandler)
	})
	r.Get("/reviews", app.listReviewsHandler)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/login", app.loginPageHandler)
		r.With(app.LoginRateLimiterMiddleware).Post("/login", app.loginHandler)
		r.Post("/logout", app.logoutHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.AdminSessionMiddleware)
			r.Get("/", app.dashboardHandler)
			r.Get("/dashboard", app.dashboardHandler)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", app.adminListProductsHandler)
				r.Post("/", app.adminCreateProductHandler)
				r.Put("/{productID}", app.adminUpdateProductHandler)
				r.Delete("/{productID}", app.adminDeleteProductHandler)
			})
			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", app.adminListReviewsHandler)
				r.Post("/", app.adminCreateReviewHandler)
				r.Put("/{reviewID}", app.adminUpdateReviewHandler)
				r.Delete("/{reviewID}", app.adminDeleteReviewHandler)
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.ExternalURL
	docs.SwaggerInfo.BasePath = "/"

	srv := &http.Server{
		Addr:         app.config.Addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.Addr, "env", app.config.Env, "api", app.config.API.BaseURL)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.Addr, "env", app.config.Env)

	return nil
}
