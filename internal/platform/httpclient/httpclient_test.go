package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestNewWithBaseURL(t *testing.T) {
	if _, err := NewWithBaseURL("", time.Second); err == nil {
		t.Fatalf("expected error for empty base url")
	}
	if _, err := NewWithBaseURL("not a url", time.Second); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
	c, err := NewWithBaseURL("https://clinic.vetmanager.cloud/", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BaseURL != "https://clinic.vetmanager.cloud" {
		t.Fatalf("expected trailing slash trimmed, got %q", c.BaseURL)
	}
}

func TestGetJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if r.Header.Get("X-Key") != "k" || r.URL.RawQuery != "a=1" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte(`{"n": 12345678901234567890}`))
		case "/empty":
			w.WriteHeader(http.StatusOK)
		case "/garbage":
			_, _ = w.Write([]byte(`<html>`))
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	c.Headers["X-Key"] = "k"
	ctx := context.Background()

	var out map[string]any
	if err := c.GetJSON(ctx, "/ok", "?a=1", nil, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if n, ok := out["n"].(json.Number); !ok || n.String() != "12345678901234567890" {
		t.Fatalf("expected json.Number, got %#v", out["n"])
	}

	if err := c.GetJSON(ctx, "/empty", "", nil, &out); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}
	if err := c.GetJSON(ctx, "/garbage", "", nil, &out); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}

	err = c.GetJSON(ctx, "/missing", "", nil, &out)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusNotFound || httpErr.Body != "nope" {
		t.Fatalf("expected HTTPError 404 with body, got %v", err)
	}
}

func TestGetJSON_BodyLimit(t *testing.T) {
	body := `{"data":"` + strings.Repeat("x", 100) + `"}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	ctx := context.Background()
	var out map[string]any

	c.MaxBody = int64(len(body))
	if err := c.GetJSON(ctx, "/big", "", nil, &out); err != nil {
		t.Fatalf("body exactly at the limit must decode, got %v", err)
	}

	c.MaxBody = int64(len(body)) - 1
	err = c.GetJSON(ctx, "/big", "", nil, &out)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if errors.Is(err, ErrDecode) {
		t.Fatalf("a cut body must not be reported as a decode error: %v", err)
	}
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	s := "Ошибка сервера" // 2 bytes por runa cirílica
	for n := 1; n < len(s); n++ {
		got := truncate(s, n)
		if !utf8.ValidString(got) {
			t.Fatalf("truncate(%d) produced invalid utf-8: %q", n, got)
		}
		if len(strings.TrimSuffix(got, "...")) > n {
			t.Fatalf("truncate(%d) longer than limit: %q", n, got)
		}
	}
	if got := truncate("abc", 3); got != "abc" {
		t.Fatalf("expected untouched string, got %q", got)
	}
	if got := truncate("Ош", 3); got != "О..." {
		t.Fatalf("expected cut before the second rune, got %q", got)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestWithTransport(t *testing.T) {
	c, err := NewWithBaseURL("https://clinic.vetmanager.cloud", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var seen string
	same := c.WithTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
			Header:     http.Header{},
			Request:    r,
		}, nil
	}))
	if same != c {
		t.Fatalf("WithTransport must return the same client")
	}

	var out map[string]any
	if err := c.GetJSON(context.Background(), "/rest/api/breed", "limit=1", nil, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if seen != "https://clinic.vetmanager.cloud/rest/api/breed?limit=1" {
		t.Fatalf("request did not go through the transport, saw %q", seen)
	}

	c.WithTransport(nil)
	if _, ok := c.HTTP.Transport.(roundTripFunc); !ok {
		t.Fatalf("nil transport must keep the current one, got %T", c.HTTP.Transport)
	}
}
