// Package client is the Go SDK for the Socail-Connect API. Every
// action issues one HTTP call, then reports the outcome to the
// registered dispatcher: a typed event with the decoded payload on
// success, or an error event carrying {msg, status} on failure.
// Mutating actions additionally raise alerts on the notifier.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// FieldError is one field-level validation failure from the server.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// APIError is the failure outcome of an action.
type APIError struct {
	Msg    string       `json:"msg"`
	Status int          `json:"status"`
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Msg)
}

type Client struct {
	baseURL    string
	http       *http.Client
	dispatcher Dispatcher
	alerts     *AlertNotifier

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithAlertTimeout overrides the default alert display duration.
func WithAlertTimeout(d time.Duration) Option {
	return func(c *Client) { c.alerts = NewAlertNotifier(d) }
}

// WithToken seeds an existing auth token (e.g. restored from storage).
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, dispatcher Dispatcher, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		http:       &http.Client{Timeout: 15 * time.Second},
		dispatcher: dispatcher,
		alerts:     NewAlertNotifier(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Alerts exposes the notifier so the caller can render and dismiss
// active alerts.
func (c *Client) Alerts() *AlertNotifier { return c.alerts }

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) emit(t EventType, payload interface{}) {
	if c.dispatcher != nil {
		c.dispatcher.Dispatch(Event{Type: t, Payload: payload})
	}
}

// fail emits the error event and raises a danger alert per field-level
// validation error, mirroring how forms surface server rejections.
func (c *Client) fail(t EventType, apiErr *APIError) {
	for _, fe := range apiErr.Errors {
		c.alerts.Push(fe.Msg, SeverityDanger)
	}
	c.emit(t, apiErr)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) *APIError {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &APIError{Msg: err.Error(), Status: 0}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Msg: err.Error(), Status: 0}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("x-auth-token", token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &APIError{Msg: err.Error(), Status: 0}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &APIError{Msg: err.Error(), Status: res.StatusCode}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Msg: http.StatusText(res.StatusCode), Status: res.StatusCode}
		var envelope struct {
			Msg    string       `json:"msg"`
			Errors []FieldError `json:"errors"`
		}
		if json.Unmarshal(raw, &envelope) == nil {
			if envelope.Msg != "" {
				apiErr.Msg = envelope.Msg
			}
			apiErr.Errors = envelope.Errors
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{Msg: err.Error(), Status: res.StatusCode}
		}
	}
	return nil
}
