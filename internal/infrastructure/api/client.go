// Package api implements the authenticated HTTP client for the calling
// backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/magikvoice/callctl/internal/ports"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Options customizes a single request.
type Options struct {
	Method   string
	Body     interface{}
	SkipAuth bool
}

// Client talks to the calling backend. A bearer token is fetched fresh from
// the token source for every request; an empty token sends the request
// unauthenticated.
type Client struct {
	BaseURL    string
	Tokens     ports.TokenSource
	HTTPClient *http.Client
	Logger     ports.Logger
}

// NewClient builds a client for the given base URL.
func NewClient(baseURL string, tokens ports.TokenSource, logger ports.Logger) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Tokens:     tokens,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		Logger:     logger,
	}
}

// Request performs an API call and decodes the JSON response into out when
// out is non-nil.
func (c *Client) Request(ctx context.Context, path string, opts Options, out interface{}) error {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !opts.SkipAuth {
		c.attachToken(ctx, req)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, resp.Header.Get("Content-Type"), data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Request(ctx, path, Options{Method: http.MethodGet}, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Request(ctx, path, Options{Method: http.MethodPost, Body: body}, out)
}

func (c *Client) attachToken(ctx context.Context, req *http.Request) {
	if c.Tokens == nil {
		return
	}
	token, err := c.Tokens.Token(ctx)
	if err != nil {
		if c.Logger != nil {
			c.Logger.Warn("token fetch failed, sending unauthenticated request", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// newAPIError extracts a human message from an error response. JSON bodies
// with an "error" field win, otherwise the raw text is used.
func newAPIError(status int, contentType string, data []byte) *APIError {
	apiErr := &APIError{Status: status, Body: string(data)}
	if strings.Contains(contentType, "application/json") {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &payload); err == nil {
			if payload.Error != "" {
				apiErr.Message = payload.Error
			} else if payload.Message != "" {
				apiErr.Message = payload.Message
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	return apiErr
}
