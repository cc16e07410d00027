package params

import (
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/shopapi"
)

// URL: /products?page=2&limit=6&tab=crochet&q=rose
// → ParsePagination() → Pagination{Limit:6, Page:2}
// → ParseProductQuery() → shopapi.ProductQuery forwarded to /api/products
// → API returns products + totalPages, handed to pagination.Resume
// Pagination holds the requested page and page size.
type Pagination struct {
	Limit int `json:"limit"` // items per page
	Page  int `json:"page"`  // current page number
}

const (
	DefaultLimit = 6
	MaxLimit     = 30
)

// ParsePagination parses ?limit=...&page=... safely. defaultLimit <= 0 means DefaultLimit.
func ParsePagination(q url.Values, defaultLimit int) Pagination {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	p := Pagination{
		Limit: min(defaultLimit, MaxLimit),
		Page:  1,
	}

	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
			case limit > MaxLimit:
				p.Limit = MaxLimit
			default:
				p.Limit = limit
			}
		}
	}

	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}
	return p
}

// ParseProductQuery reads the catalog filters. Unparseable prices are
// ignored rather than rejected. An unknown tag is dropped.
func ParseProductQuery(q url.Values, p Pagination) shopapi.ProductQuery {
	pq := shopapi.ProductQuery{
		Page:     p.Page,
		Limit:    p.Limit,
		Search:   strings.TrimSpace(firstOf(q, "search", "q")),
		Category: strings.TrimSpace(q.Get("category")),
		MinPrice: parsePrice(q.Get("minPrice")),
		MaxPrice: parsePrice(q.Get("maxPrice")),
	}
	if tag, ok := shopapi.ParseTag(firstOf(q, "tag", "tab")); ok {
		pq.Tag = string(tag)
	}
	return pq
}

// ParseReviewQuery reads the review listing filters. Ratings outside 1..5
// are ignored.
func ParseReviewQuery(q url.Values, p Pagination) shopapi.ReviewQuery {
	rq := shopapi.ReviewQuery{
		Page:      p.Page,
		Limit:     p.Limit,
		MinRating: parseRating(q.Get("minRating")),
		MaxRating: parseRating(q.Get("maxRating")),
	}
	switch t := shopapi.ReviewType(strings.ToLower(strings.TrimSpace(q.Get("type")))); t {
	case shopapi.ReviewChat, shopapi.ReviewText:
		rq.Type = string(t)
	}
	switch pl := shopapi.Platform(strings.ToLower(strings.TrimSpace(q.Get("platform")))); pl {
	case shopapi.PlatformWhatsApp, shopapi.PlatformInstagram:
		rq.Platform = string(pl)
	}
	return rq
}

func firstOf(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func parseRating(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 || v > 5 {
		return 0
	}
	return v
}
