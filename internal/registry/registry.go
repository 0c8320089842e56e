// Package registry reads published package versions from an npm-compatible
// registry.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// DefaultURL is the public npm registry.
const DefaultURL = "https://registry.npmjs.org"

// ErrEmptyName is returned when Versions is called without a package name.
var ErrEmptyName = errors.New("registry: empty package name")

// StatusError reports a non-2xx registry response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("registry: GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// Client queries package metadata documents.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Client) {
		if c != nil {
			r.http = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Client) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a client for the registry at baseURL, or DefaultURL when empty.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type packument struct {
	Versions map[string]json.RawMessage `json:"versions"`
}

// Versions returns every published version string of name, sorted
// lexically. An unpublished package yields an empty list.
func (c *Client) Versions(ctx context.Context, name string) ([]string, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	// Scoped names escape the separator: @scope%2Fname.
	endpoint := c.baseURL + "/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("registry: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.log.Info("package not published", zap.String("package", name))
		return []string{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	var doc packument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("registry: decode %s: %w", name, err)
	}

	versions := make([]string, 0, len(doc.Versions))
	for v := range doc.Versions {
		versions = append(versions, v)
	}
	sort.Strings(versions)

	c.log.Debug("fetched versions", zap.String("package", name), zap.Int("count", len(versions)))
	return versions, nil
}
