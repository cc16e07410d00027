package shopapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork means the request never produced an HTTP response.
	ErrNetwork = errors.New("shopapi: network failure")
	// ErrUnauthorized matches any 401 response.
	ErrUnauthorized = errors.New("shopapi: unauthorized")
	// ErrNotFound matches any 404 response.
	ErrNotFound = errors.New("shopapi: not found")
	// ErrNoToken is returned by Login when a 2xx response carries no token.
	ErrNoToken = errors.New("shopapi: login response has no token")
)

// APIError is a non-2xx response. Message holds the server-provided text
// when the body carried one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("shopapi: http %d", e.Status)
	}
	return fmt.Sprintf("shopapi: http %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// DecodeError is a 2xx response whose body did not match the endpoint schema.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("shopapi: decode %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Message returns the server-provided message carried by err, or fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// retryable reports whether an idempotent request may be attempted again.
func retryable(err error) bool {
	if errors.Is(err, ErrNetwork) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusTooManyRequests:
			return true
		}
	}
	return false
}
