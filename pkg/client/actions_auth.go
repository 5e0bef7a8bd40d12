package client

import (
	"context"
	"net/http"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates an account and stores the returned token for
// subsequent calls.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	var res tokenResponse
	if apiErr := c.do(ctx, http.MethodPost, "/api/users", body, &res); apiErr != nil {
		c.fail(EventAuthError, apiErr)
		return apiErr
	}

	c.SetToken(res.Token)
	c.emit(EventRegisterSuccess, res.Token)
	return nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var res tokenResponse
	if apiErr := c.do(ctx, http.MethodPost, "/api/auth", body, &res); apiErr != nil {
		c.fail(EventAuthError, apiErr)
		return apiErr
	}

	c.SetToken(res.Token)
	c.emit(EventLoginSuccess, res.Token)
	return nil
}

// LoadUser fetches the authenticated user.
func (c *Client) LoadUser(ctx context.Context) (*User, error) {
	var user User
	if apiErr := c.do(ctx, http.MethodGet, "/api/auth", nil, &user); apiErr != nil {
		c.fail(EventAuthError, apiErr)
		return nil, apiErr
	}

	c.emit(EventUserLoaded, &user)
	return &user, nil
}

// DeleteAccount removes the account, its profile and all its posts.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if apiErr := c.do(ctx, http.MethodDelete, "/api/profile", nil, nil); apiErr != nil {
		c.fail(EventProfileError, apiErr)
		return apiErr
	}

	c.emit(EventClearProfile, nil)
	c.emit(EventAccountDeleted, nil)
	c.alerts.Push("Your account has been permanently deleted", SeveritySuccess)
	c.SetToken("")
	return nil
}
