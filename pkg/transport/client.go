package transport

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rasadeyan/arachni/pkg/cookie"
)

// Rotated when no explicit user agent is configured.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.5735.198 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 13_0) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Safari/605.1.15",
}

// Client dispatches audit requests. The zero value is not usable; construct
// with New.
type Client struct {
	hc  *http.Client
	ua  string
	log *slog.Logger
}

type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// WithUserAgent pins the User-Agent header instead of rotating defaults.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.ua = ua }
}

// WithLogger sets the logger for request-level debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient replaces the underlying http.Client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New creates a Client. Redirects are never followed: the scanner inspects
// the immediate response of every mutated request.
func New(opts ...Option) *Client {
	c := &Client{
		hc: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestOptions carries the cookie and header channels of one request.
// Cookie pairs are raw; they are encoded into wire form at assembly time.
type RequestOptions struct {
	Cookies map[string]string
	Headers map[string]string
}

// Response is the immediate result of one dispatched request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
	Duration   time.Duration
}

// Get dispatches a GET request.
func (c *Client) Get(ctx context.Context, rawURL string, opts RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodGet, rawURL, nil, "", opts)
}

// Post dispatches a form-encoded POST request.
func (c *Client) Post(ctx context.Context, rawURL string, form url.Values, opts RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded", opts)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string, opts RequestOptions) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if header := CookieHeader(opts.Cookies); header != "" {
		req.Header.Set("Cookie", header)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	duration := time.Since(start)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.log.Debug("request complete",
		"method", method,
		"url", rawURL,
		"status", resp.StatusCode,
		"duration", duration,
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(raw),
		Duration:   duration,
	}, nil
}

func (c *Client) userAgent() string {
	if c.ua != "" {
		return c.ua
	}
	return defaultUserAgents[rand.Intn(len(defaultUserAgents))]
}

// CookieHeader renders raw cookie pairs as a request Cookie header value,
// each side encoded, sorted by name for deterministic output.
func CookieHeader(cookies map[string]string) string {
	if len(cookies) == 0 {
		return ""
	}

	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, cookie.Encode(name)+"="+cookie.Encode(cookies[name]))
	}
	return strings.Join(parts, ";")
}
