package shopapi

import (
	"context"
	"net/http"
	"strings"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	payload, err := jsonPayload(creds)
	if err != nil {
		return "", err
	}
	req := request{method: http.MethodPost, path: "/api/admin/login", payload: payload, endpoint: "admin login"}
	var body struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, req, &body); err != nil {
		return "", err
	}
	token := strings.TrimSpace(body.Token)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
