// Package catalog turns shop API listings into what the storefront shows:
// filtered batches, fallback data when the API is down, and the composite
// home, detail and category pages.
package catalog

import (
	"strings"

	"storefront/internal/shopapi"
)

// Tab is the product family selector on listing pages.
type Tab string

const (
	TabAll        Tab = "all"
	TabCrochet    Tab = "crochet"
	TabEmbroidery Tab = "embroidery"
)

// ParseTab maps anything that is not a known tag to TabAll.
func ParseTab(s string) Tab {
	if t, ok := shopapi.ParseTag(s); ok {
		return Tab(t)
	}
	return TabAll
}

// Filter narrows an already fetched batch in memory.
type Filter struct {
	Tab      Tab
	Query    string
	Category string
}

// Apply returns the products of src matching f, in source order. src is
// never modified.
func (f Filter) Apply(src []shopapi.Product) []shopapi.Product {
	tab := Tab(normalize(string(f.Tab)))
	query := normalize(f.Query)
	category := normalize(f.Category)

	out := make([]shopapi.Product, 0, len(src))
	for _, p := range src {
		if tab != "" && tab != TabAll && normalize(string(p.Tag)) != string(tab) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if category != "" && normalize(p.Category) != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Active reports whether f narrows anything.
func (f Filter) Active() bool {
	tab := ParseTab(string(f.Tab))
	return tab != TabAll || normalize(f.Query) != "" || normalize(f.Category) != ""
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameCategory compares category names the way the shop does: trimmed and
// case-insensitive.
func SameCategory(a, b string) bool {
	return normalize(a) == normalize(b)
}
