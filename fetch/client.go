package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "jobscout/1.0 (+https://github.com/veilleur/jobscout)"
)

// Client fetches pages with a bounded per-request timeout and a shared
// politeness rate limiter. It is safe for concurrent use.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client) error

// WithTimeout sets the per-request timeout.
// Default is 10 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout <= 0 {
			return fmt.Errorf("fetch timeout must be positive, got %v", timeout)
		}
		c.http.SetTimeout(timeout)
		return nil
	}
}

// WithRateLimit caps outgoing requests at one per interval with the given
// burst. Default is 5 requests per second with a burst of 5.
func WithRateLimit(interval time.Duration, burst int) Option {
	return func(c *Client) error {
		if interval <= 0 || burst <= 0 {
			return fmt.Errorf("rate limit interval and burst must be positive")
		}
		c.limiter = rate.NewLimiter(rate.Every(interval), burst)
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.http.SetHeader("User-Agent", ua)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// New creates a page fetcher.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		http: resty.New().
			SetTimeout(defaultTimeout).
			SetHeader("User-Agent", defaultUserAgent),
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Fetch retrieves the page at rawURL and returns its body as text.
// It fails with exactly one of the package's error kinds wrapped around
// the underlying cause.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}

	resp, err := c.http.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return "", classify(err)
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return "", fmt.Errorf("%w: %s returned %d", ErrBadStatus, rawURL, code)
	}

	if ct := resp.Header().Get("Content-Type"); !decodable(ct) {
		return "", fmt.Errorf("%w: content-type %q", ErrDecode, ct)
	}

	c.logger.Debug("fetched page", "url", rawURL, "bytes", len(resp.Body()))
	return resp.String(), nil
}

// classify maps a transport error to one of the package error kinds.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrConnection, err)
}

// decodable reports whether a Content-Type carries page text we can
// extract from. An empty Content-Type is accepted; some job boards omit it.
func decodable(contentType string) bool {
	if contentType == "" {
		return true
	}
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") ||
		strings.Contains(ct, "application/xhtml") ||
		strings.Contains(ct, "text/plain")
}
