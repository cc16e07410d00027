package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"storefront/internal/session"
	"storefront/internal/shopapi"
)

type sessionKey string

const sessionCtx sessionKey = "adminSession"

// AdminSessionMiddleware guards the back office. A request without a live
// session is sent to the login page.
func (app *application) AdminSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := sessionID(r)
		if sid == "" {
			app.redirectToLogin(w, r)
			return
		}

		s, err := app.gate.Check(r.Context(), sid)
		if errors.Is(err, session.ErrNoSession) {
			app.redirectToLogin(w, r)
			return
		}
		if err != nil {
			app.internalServerError(w, r, fmt.Errorf("session lookup: %w", err))
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtx, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoginRateLimiterMiddleware caps login attempts per client address.
func (app *application) LoginRateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if allow, retryAfter := app.rateLimiter.Allow(clientIP(r)); !allow {
			app.rateLimitExceededResponse(w, r, retryAfter)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getSessionFromContext(r *http.Request) session.Session {
	s, _ := r.Context().Value(sessionCtx).(session.Session)
	return s
}

func (app *application) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	app.clearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// adminAPIError answers a failed back-office call to the shop API. A 401
// ends the session the same way a missing one does.
func (app *application) adminAPIError(w http.ResponseWriter, r *http.Request, err error, message string, data any) {
	switch {
	case errors.Is(err, shopapi.ErrUnauthorized):
		app.logger.Warnw("shop api rejected admin token", "path", r.URL.Path)
		app.gate.Unauthorized(r.Context(), getSessionFromContext(r).ID)
		app.redirectToLogin(w, r)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		app.loadFailed(w, r, err, "Server connection error")
	case errors.Is(err, shopapi.ErrNotFound):
		app.notFoundResponse(w, r, err)
	default:
		app.logger.Errorw("shop api error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeJSONErrorWith(w, http.StatusBadGateway, message, data)
	}
}

// clientIP is the limiter key. RealIP has already rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
