// Copyright (c) 2025 BVK Chaitanya

// Package coingecko implements a read-only client for the public CoinGecko
// v3 REST API. The API needs no credentials for the endpoints used here.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// ErrCoinNotFound is returned when the API has no data for a coin id.
var ErrCoinNotFound = errors.New("coin not found")

// StatusError reports a non-2xx response status from the API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http GET returned %d", e.Code)
}

type Client struct {
	opts Options

	client *http.Client
}

// New creates a client for the CoinGecko API.
func New(opts *Options) *Client {
	if opts == nil {
		opts = new(Options)
	}
	opts.setDefaults()
	return &Client{
		opts: *opts,
		client: &http.Client{
			Timeout: opts.HttpClientTimeout,
		},
	}
}

// Slug converts a user-typed coin name to the API's id convention, which is
// lowercase with hyphens (e.g., "Shiba Inu" -> "shiba-inu").
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func (c *Client) restURL(endpoint string, values url.Values) *url.URL {
	return &url.URL{
		Scheme:   c.opts.RestScheme,
		Host:     c.opts.RestHostname,
		Path:     path.Join("/api/v3", endpoint),
		RawQuery: values.Encode(),
	}
}

func (c *Client) httpGetJSON(ctx context.Context, url *url.URL, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Add("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", url.Path, ErrCoinNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		slog.Error("http GET is unsuccessful", "path", url.Path, "status", resp.StatusCode)
		return &StatusError{Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		slog.Error("could not decode response to json", "path", url.Path, "error", err)
		return err
	}
	return nil
}
