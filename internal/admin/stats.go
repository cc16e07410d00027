package admin

import (
	"context"
	"strings"

	"storefront/internal/shopapi"
)

// statsLimit asks the API for what is effectively the whole catalog.
const statsLimit = 1000

type DashboardStats struct {
	TotalProducts   int `json:"totalProducts"`
	TotalCategories int `json:"totalCategories"`
	TotalTags       int `json:"totalTags"`
}

// ComputeStats counts products and their distinct trimmed categories and
// tags. Blank values count as one distinct value, as the shop always has.
func ComputeStats(products []shopapi.Product) DashboardStats {
	cats := map[string]struct{}{}
	tags := map[string]struct{}{}
	for _, p := range products {
		cats[strings.TrimSpace(p.Category)] = struct{}{}
		tags[strings.TrimSpace(string(p.Tag))] = struct{}{}
	}
	return DashboardStats{TotalProducts: len(products), TotalCategories: len(cats), TotalTags: len(tags)}
}

// LoadStats fetches the catalog and computes the dashboard numbers. When
// the API reports a larger total than it returned, the total wins.
func LoadStats(ctx context.Context, api ProductAPI, token string) (DashboardStats, error) {
	page, err := api.ListProducts(ctx, shopapi.ProductQuery{Page: 1, Limit: statsLimit}, shopapi.WithToken(token))
	if err != nil {
		return DashboardStats{}, err
	}
	stats := ComputeStats(page.Products)
	stats.TotalProducts = max(stats.TotalProducts, page.Total)
	return stats, nil
}
