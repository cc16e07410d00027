package main

import (
	"net/http"

	"storefront/internal/admin"
)

// AdminDashboard godoc
//
//	@Summary		Dashboard stats
//	@Description	Totals of products, distinct categories and distinct tags.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	admin.DashboardStats
//	@Failure		303	{string}	string	"redirect to /admin/login"
//	@Security		SessionCookie
//	@Router			/admin/dashboard [get]
func (app *application) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := admin.LoadStats(r.Context(), app.api, getSessionFromContext(r).Token)
	if err != nil {
		app.adminAPIError(w, r, err, "Failed to load dashboard stats", nil)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"stats": stats,
		"links": map[string]string{
			"products": "/admin/products",
			"reviews":  "/admin/reviews",
			"logout":   "/admin/logout",
		},
	})
}
