package mdblist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Searcher runs a title search against the movie metadata API.
// It is implemented by *Client and can be faked in tests.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// Client talks to the MDBList API through RapidAPI.
type Client struct {
	baseURL   *url.URL
	host      string
	apiKey    string
	http      *http.Client
	userAgent string
}

// Options configure a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL   string
	Host      string // x-rapidapi-host; derived from BaseURL when empty
	APIKey    string
	Timeout   time.Duration
	UserAgent string
}

const (
	DefaultBaseURL   = "https://mdblist.p.rapidapi.com/"
	defaultUserAgent = "marquee/0.1"
	defaultTimeout   = 10 * time.Second

	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"
)

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Status int
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Status)
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	host := strings.TrimSpace(opts.Host)
	if host == "" {
		host = base.Host
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL: base,
		host:    host,
		apiKey:  opts.APIKey,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}, nil
}

// Host returns the value sent in the x-rapidapi-host header.
func (c *Client) Host() string {
	return c.host
}

// Search looks up titles matching query. A response without a search field
// yields an empty, non-nil slice.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("s", query)
	rel := &url.URL{RawQuery: values.Encode()}

	var payload SearchResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	if payload.Search == nil {
		return []Result{}, nil
	}
	return payload.Search, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIHost, c.host)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Status: resp.StatusCode, Path: reqURL.Path}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
