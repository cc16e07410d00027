package main

import (
	"net/http"

	"storefront/internal/pagination"
	"storefront/internal/params"
)

// ListReviews godoc
//
//	@Summary		List reviews
//	@Tags			reviews
//	@Produce		json
//	@Param			page		query	int		false	"Page number"
//	@Param			type		query	string	false	"chat or text"
//	@Param			platform	query	string	false	"whatsapp or instagram"
//	@Success		200	{object}	map[string]any
//	@Failure		502	{object}	error
//	@Router			/reviews [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	rq := params.ParseReviewQuery(q, params.ParsePagination(q, app.config.PageLimit))

	page, err := app.catalog.Reviews(ctx, rq)
	if err != nil {
		app.loadFailed(w, r, err, "Failed to load reviews")
		return
	}

	pager := pagination.Resume(rq.Page, func(p int) {
		rq.Page = p
		page, err = app.catalog.Reviews(ctx, rq)
	})
	pager.SetTotalPages(page.TotalPages)
	if err != nil {
		app.loadFailed(w, r, err, "Failed to load reviews")
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"reviews":    page.Reviews,
		"pagination": pager.View(),
	})
}
