package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client issues requests against the backend under probe. It never
// interprets responses; it only captures them for the assertion layer.
type Client struct {
	baseURL string
	http    *http.Client
}

// Response is a fully captured HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// New creates a Client for the given absolute base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured base URL without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request to baseURL+path with optional extra headers.
func (c *Client) Get(ctx context.Context, path string, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, headers)
}

// PostJSON marshals payload and POSTs it as application/json.
func (c *Client) PostJSON(ctx context.Context, path string, payload interface{}, headers map[string]string) (*Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	if headers == nil {
		headers = map[string]string{}
	}
	headers["Content-Type"] = "application/json"
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(data), headers)
}

// PostRaw POSTs the body verbatim. Used to send deliberately malformed
// payloads while still declaring a JSON content type.
func (c *Client) PostRaw(ctx context.Context, path string, body string, headers map[string]string) (*Response, error) {
	if headers == nil {
		headers = map[string]string{}
	}
	if _, ok := headers["Content-Type"]; !ok {
		headers["Content-Type"] = "application/json"
	}
	return c.do(ctx, http.MethodPost, path, strings.NewReader(body), headers)
}

// Options issues an OPTIONS request (CORS preflight).
func (c *Client) Options(ctx context.Context, path string, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodOptions, path, nil, headers)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}, nil
}

// JSON decodes the body into a generic value for path assertions.
func (r *Response) JSON() (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	return v, nil
}

// Decode unmarshals the body into a typed value.
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("invalid JSON response: %w", err)
	}
	return nil
}

// Header returns the first value of the named response header.
func (r *Response) Header(name string) string {
	return r.Headers.Get(name)
}
