package main

import (
	"net/url"

	"storefront/internal/catalog"
	"storefront/internal/imageurl"
	"storefront/internal/pagination"
	"storefront/internal/shopapi"
)

// productCard is a product as the listing grids render it.
type productCard struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	URL           string      `json:"url"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"originalPrice,omitempty"`
	Discount      *float64    `json:"discount,omitempty"`
	Category      string      `json:"category"`
	Tag           shopapi.Tag `json:"tag"`
	Image         string      `json:"image"`
}

type productDetail struct {
	productCard
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
	Thumbnails  []string `json:"thumbnails"`
}

func productPath(p shopapi.Product) string {
	slug := catalog.Slugify(p.Name)
	if slug == "" {
		return "/products/" + url.PathEscape(p.ID)
	}
	return "/product/" + url.PathEscape(slug) + "/" + url.PathEscape(p.ID)
}

func (app *application) card(p shopapi.Product) productCard {
	c := productCard{
		ID:       p.ID,
		Name:     p.Name,
		URL:      productPath(p),
		Price:    p.Price,
		Discount: p.Discount,
		Category: p.Category,
		Tag:      p.Tag,
		Image:    app.images.Rewrite(p.Cover(), imageurl.Card),
	}
	if orig := p.OriginalPrice(); orig != p.Price {
		c.OriginalPrice = orig
	}
	return c
}

func (app *application) cards(products []shopapi.Product) []productCard {
	out := make([]productCard, 0, len(products))
	for _, p := range products {
		out = append(out, app.card(p))
	}
	return out
}

func (app *application) detail(p shopapi.Product) productDetail {
	gallery := p.Gallery()
	return productDetail{
		productCard: app.card(p),
		Description: p.Description,
		Images:      app.images.RewriteAll(gallery, imageurl.Detail),
		Thumbnails:  app.images.RewriteAll(gallery, imageurl.Thumb),
	}
}

type categoryCard struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Image string `json:"image,omitempty"`
	Count int    `json:"count"`
}

func (app *application) categoryCards(cats []shopapi.Category) []categoryCard {
	out := make([]categoryCard, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryCard{
			Name:  c.Name,
			URL:   "/categories/" + url.PathEscape(c.Name),
			Image: app.images.Rewrite(c.Image, imageurl.Card),
			Count: c.Count,
		})
	}
	return out
}

// listingView is the body of every catalog listing page.
type listingView struct {
	Products   []productCard     `json:"products"`
	Tab        catalog.Tab       `json:"tab"`
	Query      string            `json:"query,omitempty"`
	Category   string            `json:"category,omitempty"`
	Pagination pagination.View   `json:"pagination"`
	Empty      catalog.EmptyKind `json:"empty,omitempty"`
	Message    string            `json:"message,omitempty"`
	Fallback   bool              `json:"fallback"`
}

func emptyMessage(kind catalog.EmptyKind) string {
	switch kind {
	case catalog.EmptySearch:
		return "No products match your search"
	case catalog.EmptyCategory:
		return "No products found in this category"
	}
	return ""
}
