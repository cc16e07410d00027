package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/session"
)

const sessionCookieName = "sid"

// setSessionCookie hands the browser the opaque session id. The shop API
// token itself never leaves the server.
func (app *application) setSessionCookie(w http.ResponseWriter, s session.Session) {
	c := &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.ID,
		Path:     "/admin",
		HttpOnly: true,
		Secure:   app.secureCookies(),
		SameSite: http.SameSiteLaxMode,
	}
	if !s.ExpiresAt.IsZero() {
		c.Expires = s.ExpiresAt
		c.MaxAge = max(int(time.Until(s.ExpiresAt).Seconds()), 1)
	}
	http.SetCookie(w, c)
}

func (app *application) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/admin",
		HttpOnly: true,
		Secure:   app.secureCookies(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (app *application) secureCookies() bool {
	return app.config.Auth.SecureCookie || app.config.Env == "production"
}

func sessionID(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (app *application) loginPageHandler(w http.ResponseWriter, r *http.Request) {
	if sid := sessionID(r); sid != "" {
		if _, err := app.gate.Check(r.Context(), sid); err == nil {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"fields": []string{"username", "password"},
		"action": "/admin/login",
	})
}

type loginPayload struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin godoc
//
//	@Summary		Admin login
//	@Description	Exchanges credentials for an admin session cookie. Accepts JSON or a form post.
//	@Tags			admin-auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	loginPayload	true	"Credentials"
//	@Success		200	{object}	map[string]string
//	@Failure		401	{object}	error
//	@Router			/admin/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	isJSON := strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")

	var payload loginPayload
	if isJSON {
		if err := readJSON(w, r, &payload); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		payload.Username = r.PostForm.Get("username")
		payload.Password = r.PostForm.Get("password")
	}

	if err := Validate.Struct(payload); err != nil {
		app.logger.Debugw("login rejected before api call", "error", err)
		writeJSONError(w, http.StatusBadRequest, session.LoginMessage(session.ErrMissingCredentials))
		return
	}

	s, err := app.gate.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		app.loginFailed(w, r, err)
		return
	}

	app.rateLimiter.Reset(clientIP(r))
	app.setSessionCookie(w, s)
	app.logger.Infow("admin logged in", "remote", clientIP(r))

	if !isJSON {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}
	app.jsonResponse(w, http.StatusOK, map[string]string{"redirect": "/admin/dashboard"})
}

func (app *application) loginFailed(w http.ResponseWriter, r *http.Request, err error) {
	message := session.LoginMessage(err)
	var loginErr *session.LoginError

	switch {
	case errors.Is(err, session.ErrMissingCredentials):
		writeJSONError(w, http.StatusBadRequest, message)
	case errors.Is(err, session.ErrConnection):
		app.badGatewayResponse(w, r, err, message)
	case errors.Is(err, session.ErrInvalidCredentials), errors.As(err, &loginErr):
		app.unauthorizedErrorResponse(w, r, err, message)
	default:
		app.internalServerError(w, r, err)
	}
}

// AdminLogout godoc
//
//	@Summary		Admin logout
//	@Description	Ends the session and redirects to the login page.
//	@Tags			admin-auth
//	@Produce		json
//	@Success		303	{string}	string	"redirect to /admin/login"
//	@Router			/admin/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if sid := sessionID(r); sid != "" {
		app.gate.Logout(r.Context(), sid)
	}
	app.redirectToLogin(w, r)
}
