package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, "not found")
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error, message string) {
	app.logger.Warnw("unauthorized error", "method", r.Method, "path", r.URL.Path, "remote", clientIP(r), "error", err.Error())

	writeJSONError(w, http.StatusUnauthorized, message)
}

// badGatewayResponse reports a failure of the shop API. message is what the
// admin sees, usually the server's own text.
func (app *application) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error, message string) {
	app.logger.Errorw("shop api error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadGateway, message)
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))

	writeJSONError(w, http.StatusTooManyRequests, "Too many login attempts, retry after "+retryAfter.Round(time.Second).String())
}

// loadFailed answers a page load that could not complete. A request whose
// own context ended gets no body: the client is gone or the Timeout
// middleware answers it.
func (app *application) loadFailed(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		app.logger.Debugw("request ended before response", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		return
	}
	app.badGatewayResponse(w, r, err, message)
}
