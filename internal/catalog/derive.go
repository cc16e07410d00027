package catalog

import (
	"sort"
	"strings"

	"github.com/gosimple/slug"

	"storefront/internal/shopapi"
)

// MaxRelated caps the related products shown on a detail page.
const MaxRelated = 6

// DeriveCategories groups products by trimmed category name. The first
// product seen supplies the image and casing. Result is sorted by name.
func DeriveCategories(products []shopapi.Product) []shopapi.Category {
	index := map[string]int{}
	var out []shopapi.Category
	for _, p := range products {
		name := strings.TrimSpace(p.Category)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if i, ok := index[key]; ok {
			out[i].Count++
			continue
		}
		index[key] = len(out)
		out = append(out, shopapi.Category{Name: name, Image: p.Cover(), Count: 1})
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out
}

// DistinctCategories lists the category names present in products, in
// first-seen order.
func DistinctCategories(products []shopapi.Product) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		name := strings.TrimSpace(p.Category)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		out = append(out, name)
	}
	return out
}

// Related returns up to MaxRelated products from candidates, excluding self.
func Related(candidates []shopapi.Product, selfID string) []shopapi.Product {
	out := make([]shopapi.Product, 0, MaxRelated)
	for _, p := range candidates {
		if p.ID == selfID {
			continue
		}
		out = append(out, p)
		if len(out) == MaxRelated {
			break
		}
	}
	return out
}

// FindCategory matches name against cats case-insensitively.
func FindCategory(cats []shopapi.Category, name string) (shopapi.Category, bool) {
	for _, c := range cats {
		if SameCategory(c.Name, name) {
			return c, true
		}
	}
	return shopapi.Category{}, false
}

// Slugify renders a product name for use in a URL path. Accented names are
// transliterated, so "Crème Hoop" becomes "creme-hoop".
func Slugify(s string) string {
	return slug.Make(s)
}
