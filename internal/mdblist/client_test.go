package mdblist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com:1234/v1?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Path != "/v1" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL(http://) returned nil error, want missing host")
	}
}

func TestNewClient_DerivesHostFromBaseURL(t *testing.T) {
	c, err := NewClient(Options{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.Host() != "mdblist.p.rapidapi.com" {
		t.Fatalf("Host() = %q, want mdblist.p.rapidapi.com", c.Host())
	}

	c, err = NewClient(Options{BaseURL: "http://127.0.0.1:9", Host: " custom.host "})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.Host() != "custom.host" {
		t.Fatalf("Host() = %q, want custom.host", c.Host())
	}
}

func TestClient_SearchSendsQueryAndHeaders(t *testing.T) {
	t.Parallel()

	var gotQuery, gotKey, gotHost, gotUserAgent, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("s")
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"search":[{"id":"1","title":"The Matrix","score":8.7,"type":"movie","year":1999,"imdbid":"tt0133093"}],"total":1,"response":true}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL, Host: "mdblist.p.rapidapi.com", APIKey: "secret"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	results, err := c.Search(ctx, "The Matrix & co")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	want := Result{ID: "1", Title: "The Matrix", Score: 8.7, Type: "movie", Year: 1999}
	if len(results) != 1 || results[0] != want {
		t.Fatalf("Search results = %#v, want [%#v]", results, want)
	}
	if gotPath != "/" {
		t.Fatalf("path = %q, want /", gotPath)
	}
	if gotQuery != "The Matrix & co" {
		t.Fatalf("s = %q, want %q", gotQuery, "The Matrix & co")
	}
	if gotKey != "secret" || gotHost != "mdblist.p.rapidapi.com" {
		t.Fatalf("headers key=%q host=%q, want secret/mdblist.p.rapidapi.com", gotKey, gotHost)
	}
	if !strings.HasPrefix(gotUserAgent, "marquee/") {
		t.Fatalf("User-Agent = %q, want marquee/*", gotUserAgent)
	}
}

func TestClient_SearchMissingFieldYieldsEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":false,"error":"Movie not found!"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	results, err := c.Search(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("Search results = %#v, want empty non-nil slice", results)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("s") {
		case "bad-json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "forbidden", http.StatusForbidden)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Search(context.Background(), "bad-json")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("Search error = %v, want decode response error", err)
	}

	_, err = c.Search(context.Background(), "anything")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Search error = %v, want *StatusError", err)
	}
	if statusErr.Status != http.StatusForbidden {
		t.Fatalf("Status = %d, want 403", statusErr.Status)
	}
	if !strings.Contains(err.Error(), "returned status 403") {
		t.Fatalf("error text = %q, want status 403", err.Error())
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.Search(context.Background(), "x"); err == nil {
		t.Fatalf("nil client Search returned nil error")
	}
}
