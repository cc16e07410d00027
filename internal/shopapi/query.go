package shopapi

import (
	"net/url"
	"strconv"
	"strings"
)

// ProductQuery are the listing parameters of GET /api/products.
type ProductQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Tag      string
	MinPrice *float64
	MaxPrice *float64
}

// Values encodes q. Page and limit are always sent; the rest only when set.
func (q ProductQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(max(q.Page, 1)))
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	setIf(v, "search", q.Search)
	setIf(v, "category", q.Category)
	setIf(v, "tag", q.Tag)
	if q.MinPrice != nil {
		v.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		v.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	return v
}

// Filtered reports whether any narrowing parameter is set.
func (q ProductQuery) Filtered() bool {
	return strings.TrimSpace(q.Search) != "" || strings.TrimSpace(q.Category) != "" ||
		strings.TrimSpace(q.Tag) != "" || q.MinPrice != nil || q.MaxPrice != nil
}

// ReviewQuery are the listing parameters of GET /api/reviews.
type ReviewQuery struct {
	Page      int
	Limit     int
	Type      string
	Platform  string
	MinRating int
	MaxRating int
}

func (q ReviewQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(max(q.Page, 1)))
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	setIf(v, "type", q.Type)
	setIf(v, "platform", q.Platform)
	if q.MinRating > 0 {
		v.Set("minRating", strconv.Itoa(q.MinRating))
	}
	if q.MaxRating > 0 {
		v.Set("maxRating", strconv.Itoa(q.MaxRating))
	}
	return v
}

func setIf(v url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		v.Set(key, value)
	}
}
