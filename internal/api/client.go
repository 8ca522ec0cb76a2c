package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxErrorBody = 512

// Client talks to the news API. Every call is a single round trip: no
// retries, no caching.
type Client struct {
	baseURL          string
	http             *http.Client
	vehicleSpecsPath string
}

// New creates a client. baseURL should be like "https://api.example.com"
// (trailing slashes are trimmed). A non-positive timeout defaults to 10s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		http:             &http.Client{Timeout: timeout},
		vehicleSpecsPath: "/vehicle-specs/",
	}
}

// WithVehicleSpecsPath overrides the vehicle specification endpoint.
func (c *Client) WithVehicleSpecsPath(p string) *Client {
	c2 := *c
	if strings.TrimSpace(p) != "" {
		c2.vehicleSpecsPath = "/" + strings.TrimLeft(p, "/")
	}
	return &c2
}

// BaseURL returns the configured API host.
func (c *Client) BaseURL() string { return c.baseURL }

func pageQuery(skip, limit int) url.Values {
	q := url.Values{}
	q.Set("skip", itoa(skip))
	q.Set("limit", itoa(limit))
	return q
}

// getJSON issues a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, op, path string, q url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, q, nil, out)
}

// postJSON issues a POST with a JSON body; out may be nil to discard the response.
func (c *Client) postJSON(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, q url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var rd io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("api: request failed", "op", op, "method", method, "url", endpoint, "error", err)
		return &NetworkError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		serr := &HTTPStatusError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       strings.TrimSpace(string(b)),
		}
		slog.Error("api: unexpected status", "op", op, "method", method, "url", endpoint, "status", resp.StatusCode)
		return serr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Error("api: decode failed", "op", op, "url", endpoint, "error", err)
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}
