package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const maxResponseBytes = 4 << 20

type Config struct {
	BaseURL     string
	FallbackURL string
	Timeout     time.Duration
	// Retries is the number of extra attempts for GET requests.
	Retries    int
	RetryWait  time.Duration
	HTTPClient *http.Client
	Logger     *zap.SugaredLogger
}

// Client talks to the shop REST API.
type Client struct {
	baseURL     string
	fallbackURL string
	retries     int
	retryWait   time.Duration
	httpClient  *http.Client
	logger      *zap.SugaredLogger
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	retryWait := cfg.RetryWait
	if retryWait <= 0 {
		retryWait = 200 * time.Millisecond
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		fallbackURL: strings.TrimRight(cfg.FallbackURL, "/"),
		retries:     max(cfg.Retries, 0),
		retryWait:   retryWait,
		httpClient:  httpClient,
		logger:      logger,
	}
}

// CallOption adjusts a single call.
type CallOption func(*request)

// WithToken attaches a bearer token, used for admin-scoped listings.
func WithToken(token string) CallOption {
	return func(r *request) { r.token = token }
}

// Payload is an encoded request body. It is kept as bytes so a request can
// be replayed against the fallback URL.
type Payload struct {
	ContentType string
	Body        []byte
}

func jsonPayload(v any) (*Payload, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Payload{ContentType: "application/json", Body: b}, nil
}

type request struct {
	method   string
	path     string
	query    url.Values
	token    string
	payload  *Payload
	endpoint string
}

// do sends req and decodes a 2xx body into out. GET requests are retried
// with exponential backoff on network failures and gateway errors.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if req.endpoint == "" {
		req.endpoint = req.method + " " + req.path
	}

	var raw []byte
	attempt := func() error {
		body, err := c.send(ctx, req)
		if err != nil {
			if req.method != http.MethodGet || !retryable(err) || ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		raw = body
		return nil
	}

	var err error
	if req.method == http.MethodGet && c.retries > 0 {
		eb := backoff.NewExponentialBackOff()
		eb.InitialInterval = c.retryWait
		policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(c.retries)), ctx)
		err = backoff.RetryNotify(attempt, policy, func(err error, wait time.Duration) {
			c.logger.Warnw("retrying shop api request", "endpoint", req.endpoint, "wait", wait, "error", err)
		})
	} else {
		err = attempt()
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			err = perm.Err
		}
	}
	if err != nil {
		return err
	}

	// Writes may answer 204 or an empty 200.
	if out == nil || (req.method != http.MethodGet && len(bytes.TrimSpace(raw)) == 0) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Endpoint: req.endpoint, Err: err}
	}
	return nil
}

// send performs one attempt against the base URL, falling back to the
// fallback URL when the base is unreachable.
func (c *Client) send(ctx context.Context, req request) ([]byte, error) {
	body, err := c.sendTo(ctx, c.baseURL, req)
	if err != nil && errors.Is(err, ErrNetwork) && c.fallbackURL != "" && c.fallbackURL != c.baseURL && ctx.Err() == nil {
		c.logger.Warnw("shop api unreachable, trying fallback", "endpoint", req.endpoint, "error", err)
		return c.sendTo(ctx, c.fallbackURL, req)
	}
	return body, err
}

func (c *Client) sendTo(ctx context.Context, base string, req request) ([]byte, error) {
	u := base + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.payload != nil {
		body = bytes.NewReader(req.payload.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", req.endpoint, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.payload != nil {
		httpReq.Header.Set("Content-Type", req.payload.ContentType)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, req.endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %v", ErrNetwork, req.endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	return raw, nil
}

// errorMessage pulls the human readable text out of an error body. The API
// uses both {"message": ...} and {"error": ...}.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func applyOptions(req *request, opts []CallOption) {
	for _, opt := range opts {
		opt(req)
	}
}
