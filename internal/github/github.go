// Package github lists and downloads files from a GitHub repository snapshot.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultAPIURL    = "https://api.github.com"
	DefaultRawURL    = "https://raw.githubusercontent.com"
	DefaultUserAgent = "Awesome-Octocat-App"
)

// Repo identifies a branch of a repository.
type Repo struct {
	Owner  string
	Name   string
	Branch string
}

func (r Repo) String() string {
	return r.Owner + "/" + r.Name + "@" + r.Branch
}

// TreeEntry is one item of a recursive git tree listing.
type TreeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
	Size int64  `json:"size,omitempty"`
	URL  string `json:"url"`
}

// Base returns the last path element.
func (e TreeEntry) Base() string {
	return path.Base(e.Path)
}

type tree struct {
	SHA       string      `json:"sha"`
	Tree      []TreeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github: GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// Client talks to the tree API and the raw content host.
type Client struct {
	apiURL    string
	rawURL    string
	userAgent string
	http      *http.Client
	log       *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIURL overrides the REST API base URL.
func WithAPIURL(u string) Option {
	return func(c *Client) { c.apiURL = strings.TrimRight(u, "/") }
}

// WithRawURL overrides the raw content base URL.
func WithRawURL(u string) Option {
	return func(c *Client) { c.rawURL = strings.TrimRight(u, "/") }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a client for the public GitHub endpoints.
func New(opts ...Option) *Client {
	c := &Client{
		apiURL:    DefaultAPIURL,
		rawURL:    DefaultRawURL,
		userAgent: DefaultUserAgent,
		http:      http.DefaultClient,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tree returns the recursive tree listing of repo at its branch.
func (c *Client) Tree(ctx context.Context, repo Repo) ([]TreeEntry, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1", c.apiURL, repo.Owner, repo.Name, repo.Branch)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var t tree
	if err := json.NewDecoder(body).Decode(&t); err != nil {
		return nil, fmt.Errorf("github: decode tree %s: %w", repo, err)
	}
	if t.Truncated {
		c.log.Warn("tree listing truncated", zap.Stringer("repo", repo), zap.Int("entries", len(t.Tree)))
	}
	return t.Tree, nil
}

// Raw returns the content of file p in repo.
func (c *Client) Raw(ctx context.Context, repo Repo, p string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawURL, repo.Owner, repo.Name, repo.Branch, p)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("github: read %s: %w", url, err)
	}
	return data, nil
}

// Download fetches every entry concurrently and writes it to dir/<base name>
// on fs. limit caps the number of requests in flight; zero or less means
// unbounded. The first failure cancels the rest. It returns the written
// base names sorted.
func (c *Client) Download(ctx context.Context, repo Repo, entries []TreeEntry, fs afero.Fs, dir string, limit int) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Base()
		dest := filepath.Join(dir, entry.Base())

		g.Go(func() error {
			c.log.Info("downloading file", zap.String("path", entry.Path), zap.String("dest", dest))

			data, err := c.Raw(ctx, repo, entry.Path)
			if err != nil {
				return err
			}
			if err := afero.WriteFile(fs, dest, data, 0o644); err != nil {
				return fmt.Errorf("github: write %s: %w", dest, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// FilterStubs keeps entries under dir whose path ends in ".sol".
func FilterStubs(entries []TreeEntry, dir string) []TreeEntry {
	var out []TreeEntry
	for _, e := range entries {
		if strings.HasPrefix(e.Path, dir) && strings.HasSuffix(e.Path, ".sol") {
			out = append(out, e)
		}
	}
	return out
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("github: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: GET %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}
