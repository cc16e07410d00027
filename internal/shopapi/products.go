package shopapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

func (c *Client) ListProducts(ctx context.Context, q ProductQuery, opts ...CallOption) (ProductPage, error) {
	req := request{method: http.MethodGet, path: "/api/products", query: q.Values(), endpoint: "list products"}
	applyOptions(&req, opts)

	var body struct {
		Products   *[]Product `json:"products"`
		TotalPages int        `json:"totalPages"`
		Total      int        `json:"total"`
		Page       int        `json:"page"`
	}
	if err := c.do(ctx, req, &body); err != nil {
		return ProductPage{}, err
	}
	if body.Products == nil {
		return ProductPage{}, &DecodeError{Endpoint: req.endpoint, Err: errors.New(`missing "products"`)}
	}
	page := ProductPage{
		Products:   normalizeProducts(*body.Products),
		TotalPages: max(body.TotalPages, 0),
		Total:      body.Total,
		Page:       body.Page,
	}
	return page, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	req := request{method: http.MethodGet, path: "/api/products/" + url.PathEscape(id), endpoint: "get product"}
	var p Product
	if err := c.do(ctx, req, &p); err != nil {
		return Product{}, err
	}
	if p.ID == "" {
		return Product{}, &DecodeError{Endpoint: req.endpoint, Err: errors.New(`missing "_id"`)}
	}
	return normalizeProduct(p), nil
}

// SearchProducts backs the typeahead. A blank query returns no results
// without calling the API.
func (c *Client) SearchProducts(ctx context.Context, q string) ([]ProductRef, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []ProductRef{}, nil
	}
	req := request{
		method:   http.MethodGet,
		path:     "/api/products/search",
		query:    url.Values{"q": {q}},
		endpoint: "search products",
	}
	var refs []ProductRef
	if err := c.do(ctx, req, &refs); err != nil {
		return nil, err
	}
	if refs == nil {
		refs = []ProductRef{}
	}
	return refs, nil
}

// CreateProduct posts a multipart product form to /api/addProduct.
func (c *Client) CreateProduct(ctx context.Context, token string, form *Form) (Product, error) {
	payload, err := form.Encode()
	if err != nil {
		return Product{}, err
	}
	req := request{method: http.MethodPost, path: "/api/addProduct", token: token, payload: payload, endpoint: "create product"}
	return c.writeProduct(ctx, req)
}

// UpdateProduct puts a multipart product form. The form carries the
// retained image URLs in its existingImages field.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, form *Form) (Product, error) {
	payload, err := form.Encode()
	if err != nil {
		return Product{}, err
	}
	req := request{method: http.MethodPut, path: "/api/products/" + url.PathEscape(id), token: token, payload: payload, endpoint: "update product"}
	return c.writeProduct(ctx, req)
}

// writeProduct accepts either a bare product or {"product": {...}} as the
// success body. An empty or unrecognised body is not an error.
func (c *Client) writeProduct(ctx context.Context, req request) (Product, error) {
	var raw json.RawMessage
	if err := c.do(ctx, req, &raw); err != nil {
		return Product{}, err
	}
	var wrapped struct {
		Product *Product `json:"product"`
	}
	if json.Unmarshal(raw, &wrapped) == nil && wrapped.Product != nil {
		return normalizeProduct(*wrapped.Product), nil
	}
	var p Product
	if json.Unmarshal(raw, &p) == nil {
		return normalizeProduct(p), nil
	}
	return Product{}, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	req := request{method: http.MethodDelete, path: "/api/products/" + url.PathEscape(id), token: token, endpoint: "delete product"}
	return c.do(ctx, req, nil)
}

func normalizeProducts(in []Product) []Product {
	out := make([]Product, 0, len(in))
	for _, p := range in {
		out = append(out, normalizeProduct(p))
	}
	return out
}

func normalizeProduct(p Product) Product {
	if t, ok := ParseTag(string(p.Tag)); ok {
		p.Tag = t
	}
	p.Category = strings.TrimSpace(p.Category)
	return p
}
