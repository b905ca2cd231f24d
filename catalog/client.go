package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the catalog process over HTTP. One attempt per call, no
// retries; the gateway answers each request exactly once.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) (*Client, error) {
	base = strings.TrimSuffix(base, "/")
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid catalog url: %w", err)
	}
	return &Client{
		base: base,
		http: &http.Client{},
	}, nil
}

func (c *Client) call(ctx context.Context, method string, path string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("catalog response read failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, NewStatusError(resp.StatusCode, string(raw))
	}

	return json.RawMessage(raw), nil
}

func (c *Client) Search(ctx context.Context, filters SearchFilters) (json.RawMessage, error) {
	return c.call(ctx, http.MethodPost, "/search", filters)
}

type entryRequest struct {
	Slug   string `json:"slug,omitempty"`
	Random bool   `json:"random,omitempty"`
}

func (c *Client) Entry(ctx context.Context, slug string, random bool) (json.RawMessage, error) {
	if random {
		return c.call(ctx, http.MethodPost, "/entry", entryRequest{Random: true})
	}
	return c.call(ctx, http.MethodPost, "/entry", entryRequest{Slug: slug})
}

func (c *Client) Platforms(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, "/platforms", nil)
}

func (c *Client) Regions(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, "/regions", nil)
}

func (c *Client) Info(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, "/info", nil)
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.call(ctx, http.MethodGet, "/info", nil)
	return err
}
