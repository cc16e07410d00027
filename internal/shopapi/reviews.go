package shopapi

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/url"
)

func (c *Client) ListReviews(ctx context.Context, q ReviewQuery, opts ...CallOption) (ReviewPage, error) {
	req := request{method: http.MethodGet, path: "/api/reviews", query: q.Values(), endpoint: "list reviews"}
	applyOptions(&req, opts)

	var body struct {
		Reviews    *[]Review `json:"reviews"`
		TotalPages int       `json:"totalPages"`
		Total      int       `json:"total"`
	}
	if err := c.do(ctx, req, &body); err != nil {
		return ReviewPage{}, err
	}
	if body.Reviews == nil {
		return ReviewPage{}, &DecodeError{Endpoint: req.endpoint, Err: errors.New(`missing "reviews"`)}
	}
	return ReviewPage{Reviews: *body.Reviews, TotalPages: max(body.TotalPages, 0), Total: body.Total}, nil
}

func (c *Client) ProductReviews(ctx context.Context, productID string) ([]Review, error) {
	req := request{method: http.MethodGet, path: "/api/reviews/product/" + url.PathEscape(productID), endpoint: "product reviews"}
	var body struct {
		Reviews *[]Review `json:"reviews"`
	}
	if err := c.do(ctx, req, &body); err != nil {
		return nil, err
	}
	if body.Reviews == nil {
		return nil, &DecodeError{Endpoint: req.endpoint, Err: errors.New(`missing "reviews"`)}
	}
	return *body.Reviews, nil
}

// NewReview is a review to be created. Screenshot is only sent for chat
// reviews.
type NewReview struct {
	Type       ReviewType
	Platform   Platform
	AuthorName string
	Rating     int
	Message    string
	ProductID  string
	Screenshot *File
}

// CreateReview posts a chat review with a screenshot as multipart and every
// other review as JSON.
func (c *Client) CreateReview(ctx context.Context, token string, r NewReview) (Review, error) {
	var (
		payload *Payload
		err     error
	)
	if r.Type == ReviewChat && r.Screenshot != nil {
		form := &Form{}
		form.Set("type", string(r.Type))
		form.SetIf("platform", string(r.Platform))
		form.SetIf("authorName", r.AuthorName)
		form.SetIf("message", r.Message)
		form.SetIf("productId", r.ProductID)
		shot := *r.Screenshot
		shot.Field = "image"
		form.AddFile(shot)
		payload, err = form.Encode()
	} else {
		body := ReviewUpdate{
			Type:       r.Type,
			Platform:   r.Platform,
			AuthorName: r.AuthorName,
			Message:    r.Message,
			ProductID:  r.ProductID,
		}
		if r.Type == ReviewText && r.Rating > 0 {
			rating := r.Rating
			body.Rating = &rating
		}
		if r.Type == ReviewText {
			body.Platform = ""
		}
		payload, err = jsonPayload(body)
	}
	if err != nil {
		return Review{}, err
	}

	req := request{method: http.MethodPost, path: "/api/reviews", token: token, payload: payload, endpoint: "create review"}
	var created Review
	if err := c.do(ctx, req, &created); err != nil {
		return Review{}, err
	}
	return created, nil
}

func (c *Client) UpdateReview(ctx context.Context, token, id string, u ReviewUpdate) (Review, error) {
	payload, err := jsonPayload(u)
	if err != nil {
		return Review{}, err
	}
	req := request{method: http.MethodPut, path: "/api/reviews/" + url.PathEscape(id), token: token, payload: payload, endpoint: "update review"}
	var updated Review
	if err := c.do(ctx, req, &updated); err != nil {
		return Review{}, err
	}
	return updated, nil
}

func (c *Client) DeleteReview(ctx context.Context, token, id string) error {
	req := request{method: http.MethodDelete, path: "/api/reviews/" + url.PathEscape(id), token: token, endpoint: "delete review"}
	return c.do(ctx, req, nil)
}

// AverageRating is the mean rating over text reviews, 0 when none are rated.
func AverageRating(reviews []Review) float64 {
	var sum, n int
	for _, r := range reviews {
		if r.Rating > 0 {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}
