// Package httpclient envuelve *http.Client para los adapters que hablan JSON con APIs externas.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultTimeout = 10 * time.Second
	DefaultMaxBody = 8 << 20
)

var (
	ErrNilClient = errors.New("httpclient: nil client")
	// ErrEmptyBody: 2xx sin cuerpo cuando el caller esperaba JSON.
	ErrEmptyBody = errors.New("httpclient: empty body")
	// ErrDecode: el cuerpo no es JSON válido para out.
	ErrDecode = errors.New("httpclient: decode json")
	// ErrTooLarge: el cuerpo supera MaxBody; no se decodifica una respuesta cortada.
	ErrTooLarge = errors.New("httpclient: response too large")
)

// Client envuelve *http.Client con BaseURL y headers fijos (p.ej. la API key).
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Headers map[string]string
	// MaxBody en bytes; <= 0 usa DefaultMaxBody.
	MaxBody int64
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		Headers: map[string]string{},
		MaxBody: DefaultMaxBody,
	}
}

// NewWithBaseURL valida la URL base; los paths relativos se resuelven contra ella.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("httpclient: empty base url")
	}
	u, err := url.ParseRequestURI(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// WithTransport permite inyectar un RoundTripper (tests, instrumentación).
func (c *Client) WithTransport(tr http.RoundTripper) *Client {
	if tr != nil {
		c.HTTP.Transport = tr
	}
	return c
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// GetJSON hace GET path?query y decodifica en out con UseNumber
// (los números llegan como json.Number, sin perder precisión).
// headers se suman a los fijos del Client.
func (c *Client) GetJSON(ctx context.Context, path, query string, headers map[string]string, out any) error {
	if c == nil || c.HTTP == nil {
		return ErrNilClient
	}

	fullURL, err := c.resolveURL(path, query)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for _, hs := range []map[string]string{c.Headers, headers} {
		for k, v := range hs {
			if strings.TrimSpace(k) == "" || v == "" {
				continue
			}
			req.Header.Set(k, v)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	limit := c.MaxBody
	if limit <= 0 {
		limit = DefaultMaxBody
	}
	// un byte de más para distinguir "justo en el límite" de "cortado"
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(raw)), 512),
		}
	}

	if int64(len(raw)) > limit {
		return fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func (c *Client) resolveURL(path, query string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("httpclient: empty path")
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.BaseURL + path
	if query = strings.TrimLeft(query, "?"); query != "" {
		u += "?" + query
	}
	return u, nil
}

// truncate corta en n bytes sin partir una runa.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
