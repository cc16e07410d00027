package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"storefront/internal/admin"
	"storefront/internal/pagination"
	"storefront/internal/params"
	"storefront/internal/shopapi"
)

type reviewTableResponse struct {
	admin.ReviewTableView
	Pagination pagination.View `json:"pagination"`
}

// reviewPayload is the JSON review form. Rating is accepted as a number or
// a string.
type reviewPayload struct {
	Type       string `json:"type"`
	Platform   string `json:"platform"`
	AuthorName string `json:"authorName"`
	Rating     any    `json:"rating"`
	Message    string `json:"message"`
	ProductID  string `json:"productId"`
}

func (p reviewPayload) form() (admin.ReviewForm, error) {
	f := admin.ReviewForm{
		Type:       p.Type,
		Platform:   p.Platform,
		AuthorName: p.AuthorName,
		Message:    p.Message,
		ProductID:  p.ProductID,
	}
	switch v := p.Rating.(type) {
	case nil:
	case float64:
		f.Rating = strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		f.Rating = v
	default:
		return admin.ReviewForm{}, errors.New("rating must be a number")
	}
	return f, nil
}

func (app *application) adminReviewQuery(r *http.Request) shopapi.ReviewQuery {
	q := r.URL.Query()
	return params.ParseReviewQuery(q, params.ParsePagination(q, app.config.PageLimit))
}

// AdminListReviews godoc
//
//	@Summary		Review table
//	@Tags			admin-reviews
//	@Produce		json
//	@Param			page	query	int	false	"Page number"
//	@Success		200	{object}	reviewTableResponse
//	@Failure		303	{string}	string	"redirect to /admin/login"
//	@Security		SessionCookie
//	@Router			/admin/reviews [get]
func (app *application) adminListReviewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := getSessionFromContext(r).Token
	rq := app.adminReviewQuery(r)

	editor := admin.NewReviewEditor(app.api, token, rq)
	err := editor.Load(ctx)
	if err == nil {
		pager := pagination.Resume(rq.Page, func(page int) {
			rq.Page = page
			editor = admin.NewReviewEditor(app.api, token, rq)
			err = editor.Load(ctx)
		})
		pager.SetTotalPages(editor.View().TotalPages)
		if err == nil {
			app.jsonResponse(w, http.StatusOK, reviewTableResponse{
				ReviewTableView: editor.View(),
				Pagination:      pager.View(),
			})
			return
		}
	}
	app.adminAPIError(w, r, err, editor.View().Error, nil)
}

// AdminCreateReview godoc
//
//	@Summary		Create review
//	@Description	Chat reviews may attach a screenshot under "image".
//	@Tags			admin-reviews
//	@Accept			mpfd
//	@Produce		json
//	@Success		201	{object}	admin.ReviewTableView
//	@Failure		400	{object}	error
//	@Security		SessionCookie
//	@Router			/admin/reviews [post]
func (app *application) adminCreateReviewHandler(w http.ResponseWriter, r *http.Request) {
	var (
		form admin.ReviewForm
		shot *admin.Upload
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var payload reviewPayload
		if err := readJSON(w, r, &payload); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		f, err := payload.form()
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		form = f
	} else {
		if err := parseMultipart(w, r); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		uploads, err := readUploads(r, "image")
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		if len(uploads) > 0 {
			shot = &uploads[0]
		}
		form = admin.ReviewForm{
			Type:       r.FormValue("type"),
			Platform:   r.FormValue("platform"),
			AuthorName: r.FormValue("authorName"),
			Rating:     r.FormValue("rating"),
			Message:    r.FormValue("message"),
			ProductID:  r.FormValue("productId"),
		}
	}

	editor := admin.NewReviewEditor(app.api, getSessionFromContext(r).Token, app.adminReviewQuery(r))
	if err := editor.OpenCreate(); err != nil {
		app.internalServerError(w, r, err)
		return
	}
	editor.SetForm(form)
	editor.SetScreenshot(shot)

	app.submitReview(w, r, editor, http.StatusCreated)
}

// AdminUpdateReview godoc
//
//	@Summary		Update review
//	@Tags			admin-reviews
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path	string	true	"Review ID"
//	@Param			payload		body	reviewPayload	true	"Review"
//	@Success		200	{object}	admin.ReviewTableView
//	@Failure		400	{object}	error
//	@Security		SessionCookie
//	@Router			/admin/reviews/{reviewID} [put]
func (app *application) adminUpdateReviewHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "reviewID"))

	var payload reviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	form, err := payload.form()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	editor := admin.NewReviewEditor(app.api, getSessionFromContext(r).Token, app.adminReviewQuery(r))
	if err := editor.OpenEdit(shopapi.Review{ID: id}); err != nil {
		app.internalServerError(w, r, err)
		return
	}
	editor.SetForm(form)

	app.submitReview(w, r, editor, http.StatusOK)
}

func (app *application) submitReview(w http.ResponseWriter, r *http.Request, editor *admin.ReviewEditor, status int) {
	err := editor.Submit(r.Context())
	view := editor.View()
	switch {
	case err == nil:
		app.jsonResponse(w, status, view)
	case admin.IsValidation(err):
		writeJSONErrorWith(w, http.StatusBadRequest, view.Modal.Error, view)
	case errors.Is(err, admin.ErrBusy), errors.Is(err, admin.ErrNoModal):
		app.internalServerError(w, r, err)
	default:
		app.adminAPIError(w, r, err, view.Modal.Error, view)
	}
}

// AdminDeleteReview godoc
//
//	@Summary		Delete review
//	@Tags			admin-reviews
//	@Produce		json
//	@Param			reviewID	path	string	true	"Review ID"
//	@Param			confirm		query	bool	true	"Must be true"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	error
//	@Security		SessionCookie
//	@Router			/admin/reviews/{reviewID} [delete]
func (app *application) adminDeleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "reviewID"))
	confirmed := r.URL.Query().Get("confirm") == "true"

	editor := admin.NewReviewEditor(app.api, getSessionFromContext(r).Token, shopapi.ReviewQuery{})
	err := editor.Delete(r.Context(), id, confirmed)
	switch {
	case err == nil:
		app.jsonResponse(w, http.StatusOK, map[string]string{"deleted": id})
	case errors.Is(err, admin.ErrNotConfirmed):
		writeJSONError(w, http.StatusBadRequest, "Are you sure you want to delete this review? Repeat with confirm=true")
	default:
		app.adminAPIError(w, r, err, editor.View().Modal.Notice, nil)
	}
}
