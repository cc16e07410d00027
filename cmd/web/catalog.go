package main

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"storefront/internal/catalog"
	"storefront/internal/pagination"
	"storefront/internal/params"
	"storefront/internal/shopapi"
)

// Home godoc
//
//	@Summary		Home page
//	@Description	Featured products, categories and reviews. Sections the shop API cannot serve fall back to the bundled catalog.
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Failure		502	{object}	error
//	@Router			/ [get]
func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	home, err := app.catalog.Home(r.Context())
	if err != nil {
		app.loadFailed(w, r, err, "Failed to load the home page")
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"featured":   app.cards(home.Featured),
		"categories": app.categoryCards(home.Categories),
		"reviews":    home.Reviews,
		"fallback":   home.Fallback,
	})
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	One page of the catalog, narrowed by tab, search and category.
//	@Tags			catalog
//	@Produce		json
//	@Param			page		query	int		false	"Page number (default 1)"
//	@Param			limit		query	int		false	"Items per page (default 6, max 30)"
//	@Param			tab		query	string	false	"all, crochet or embroidery"
//	@Param			q		query	string	false	"Name search"
//	@Param			category	query	string	false	"Category name"
//	@Param			minPrice	query	number	false	"Minimum price"
//	@Param			maxPrice	query	number	false	"Maximum price"
//	@Success		200	{object}	listingView
//	@Failure		502	{object}	error
//	@Router			/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	app.serveListing(w, r, "")
}

// tabProductsHandler serves a listing pinned to one product family.
func (app *application) tabProductsHandler(tab catalog.Tab) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.serveListing(w, r, tab)
	}
}

func (app *application) serveListing(w http.ResponseWriter, r *http.Request, pinned catalog.Tab) {
	ctx := r.Context()
	q := r.URL.Query()

	pq := params.ParseProductQuery(q, params.ParsePagination(q, app.config.PageLimit))
	if pinned != "" {
		pq.Tag = string(pinned)
	}
	filter := catalog.Filter{Tab: catalog.ParseTab(pq.Tag), Query: pq.Search, Category: pq.Category}

	res, err := app.catalog.Products(ctx, pq, filter)
	if err != nil {
		app.loadFailed(w, r, err, "Failed to load products")
		return
	}

	// A page past the end is pulled back to the last page and fetched again.
	pager := pagination.Resume(pq.Page, func(page int) {
		pq.Page = page
		res, err = app.catalog.Products(ctx, pq, filter)
	})
	pager.SetTotalPages(res.TotalPages)
	if err != nil {
		app.loadFailed(w, r, err, "Failed to load products")
		return
	}

	view := listingView{
		Products:   app.cards(res.Products),
		Tab:        filter.Tab,
		Query:      pq.Search,
		Category:   pq.Category,
		Pagination: pager.View(),
		Empty:      res.Empty,
		Message:    emptyMessage(res.Empty),
		Fallback:   res.Fallback,
	}
	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// SearchProducts godoc
//
//	@Summary		Product typeahead
//	@Description	Matching product names. A blank query returns an empty list.
//	@Tags			catalog
//	@Produce		json
//	@Param			q	query	string	false	"Search text"
//	@Success		200	{object}	map[string]any
//	@Router			/products/search [get]
func (app *application) searchProductsHandler(w http.ResponseWriter, r *http.Request) {
	refs := app.catalog.Search(r.Context(), r.URL.Query().Get("q"))

	type result struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	results := make([]result, 0, len(refs))
	for _, ref := range refs {
		results = append(results, result{
			ID:   ref.ID,
			Name: ref.Name,
			URL:  productPath(shopapi.Product{ID: ref.ID, Name: ref.Name}),
		})
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{"results": results})
}

// ProductDetail godoc
//
//	@Summary		Product detail
//	@Description	A product with up to six related products and its reviews.
//	@Tags			catalog
//	@Produce		json
//	@Param			productID	path	string	true	"Product ID"
//	@Success		200	{object}	map[string]any
//	@Failure		404	{object}	error
//	@Router			/products/{productID} [get]
func (app *application) productDetailHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "productID"))
	if id == "" {
		app.badRequestResponse(w, r, errors.New("product id is required"))
		return
	}

	d, err := app.catalog.Detail(r.Context(), id)
	if errors.Is(err, shopapi.ErrNotFound) {
		app.notFoundResponse(w, r, err)
		return
	}
	if err != nil {
		app.loadFailed(w, r, err, "Failed to load product")
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"product":       app.detail(d.Product),
		"related":       app.cards(d.Related),
		"reviews":       d.Reviews,
		"averageRating": d.AverageRating,
		"fallback":      d.Fallback,
	})
}

// ListCategories godoc
//
//	@Summary		List categories
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Router			/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	cats, fallback := app.catalog.Categories(r.Context())

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"categories": app.categoryCards(cats),
		"fallback":   fallback,
	})
}

// CategoryPage godoc
//
//	@Summary		Category page
//	@Description	Products of one category with its header info. Names match case-insensitively.
//	@Tags			catalog
//	@Produce		json
//	@Param			category	path	string	true	"Category name"
//	@Success		200	{object}	map[string]any
//	@Failure		400	{object}	error
//	@Router			/categories/{category} [get]
func (app *application) categoryPageHandler(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "category"))
	if err != nil || strings.TrimSpace(name) == "" {
		app.badRequestResponse(w, r, errors.New("invalid category"))
		return
	}

	page, err := app.catalog.CategoryPage(r.Context(), strings.TrimSpace(name))
	if err != nil {
		app.loadFailed(w, r, err, "Failed to load category")
		return
	}

	var header categoryCard
	if cards := app.categoryCards([]shopapi.Category{page.Category}); len(cards) > 0 {
		header = cards[0]
	}
	app.jsonResponse(w, http.StatusOK, map[string]any{
		"category": header,
		"known":    page.Known,
		"products": app.cards(page.Products),
		"empty":    page.Empty,
		"message":  emptyMessage(page.Empty),
		"fallback": page.Fallback,
	})
}
