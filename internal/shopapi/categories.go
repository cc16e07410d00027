package shopapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	req := request{method: http.MethodGet, path: "/api/categories", endpoint: "list categories"}
	var cats []Category
	if err := c.do(ctx, req, &cats); err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(cats))
	for _, cat := range cats {
		cat.Name = strings.TrimSpace(cat.Name)
		if cat.Name == "" {
			continue
		}
		out = append(out, cat)
	}
	return out, nil
}

// CategoryProducts lists every product in category. The endpoint is not
// paginated.
func (c *Client) CategoryProducts(ctx context.Context, category string) ([]Product, error) {
	req := request{
		method:   http.MethodGet,
		path:     "/api/categories/" + url.PathEscape(strings.TrimSpace(category)) + "/products",
		endpoint: "category products",
	}
	var body struct {
		Products *[]Product `json:"products"`
	}
	if err := c.do(ctx, req, &body); err != nil {
		return nil, err
	}
	if body.Products == nil {
		return nil, &DecodeError{Endpoint: req.endpoint, Err: errors.New(`missing "products"`)}
	}
	return normalizeProducts(*body.Products), nil
}
