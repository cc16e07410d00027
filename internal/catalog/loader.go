package catalog

import (
	"context"
	"errors"
	"sync"

	"storefront/internal/shopapi"
)

// ErrSuperseded is returned by Load when a newer load started before this
// one finished. Its result was discarded.
var ErrSuperseded = errors.New("catalog: load superseded by a newer request")

// ProductLister is the slice of the shop API the loader needs.
type ProductLister interface {
	ListProducts(ctx context.Context, q shopapi.ProductQuery, opts ...shopapi.CallOption) (shopapi.ProductPage, error)
}

// EmptyKind tells the view which empty-state message to show.
type EmptyKind string

const (
	EmptyNone     EmptyKind = ""
	EmptySearch   EmptyKind = "search"
	EmptyCategory EmptyKind = "category"
)

// Result is one committed listing.
type Result struct {
	Query      shopapi.ProductQuery
	Products   []shopapi.Product
	TotalPages int
	// Fallback is set when Products came from the bundled catalog.
	Fallback bool
	Empty    EmptyKind
	// Err is the fetch error that caused a fallback, if any.
	Err error
}

// Loader fetches product pages. Only the most recent Load commits its
// result, and starting a Load cancels the one in flight.
type Loader struct {
	api  ProductLister
	opts []shopapi.CallOption

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	loading bool
	current Result
}

func NewLoader(api ProductLister, opts ...shopapi.CallOption) *Loader {
	return &Loader{api: api, opts: opts}
}

// Load fetches q and commits the result unless a newer Load has started.
// Network and server failures do not surface as an error: the result falls
// back to the bundled catalog with Err set. The returned error is
// ErrSuperseded or the caller's context error.
func (l *Loader) Load(ctx context.Context, q shopapi.ProductQuery) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	l.cancel = cancel
	l.loading = true
	l.mu.Unlock()

	page, err := l.api.ListProducts(ctx, q, l.opts...)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		return Result{}, ErrSuperseded
	}
	l.cancel = nil
	l.loading = false
	if err != nil && ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	res := Resolve(q, page, err)
	l.current = res
	return res, nil
}

// Current returns the last committed result and whether a load is in
// flight.
func (l *Loader) Current() (Result, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current, l.loading
}

// Resolve applies the fallback and empty-state rules to a fetch outcome.
func Resolve(q shopapi.ProductQuery, page shopapi.ProductPage, err error) Result {
	res := Result{Query: q}
	if err != nil {
		res.Err = err
		res.Products = fallbackFor(q)
		res.TotalPages = 1
		res.Fallback = true
		return res
	}

	res.Products = page.Products
	res.TotalPages = page.TotalPages
	if len(page.Products) > 0 {
		return res
	}
	// A page past the end is not an empty catalog. The caller moves back
	// into range.
	if page.TotalPages > 0 && q.Page > page.TotalPages {
		return res
	}
	switch {
	case !q.Filtered():
		res.Products = StaticProducts()
		res.TotalPages = 1
		res.Fallback = true
	case q.Search != "":
		res.Empty = EmptySearch
	default:
		res.Empty = EmptyCategory
	}
	return res
}

// fallbackFor narrows the bundled catalog by the query's tab so a crochet
// page does not show embroidery. If nothing matches the whole catalog is
// shown.
func fallbackFor(q shopapi.ProductQuery) []shopapi.Product {
	all := StaticProducts()
	if q.Tag == "" {
		return all
	}
	if narrowed := (Filter{Tab: Tab(q.Tag)}).Apply(all); len(narrowed) > 0 {
		return narrowed
	}
	return all
}
