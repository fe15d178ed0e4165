package websearch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const (
	defaultEndpoint = "https://html.duckduckgo.com/html/"
	providerDomain  = "duckduckgo.com"
	defaultTimeout  = 15 * time.Second
)

// DuckDuckGo queries the DuckDuckGo HTML endpoint and parses result links.
type DuckDuckGo struct {
	http     *resty.Client
	endpoint string
	logger   *slog.Logger
}

// Option configures a DuckDuckGo client.
type Option func(*DuckDuckGo) error

// WithEndpoint overrides the HTML endpoint URL. Intended for tests.
func WithEndpoint(endpoint string) Option {
	return func(d *DuckDuckGo) error {
		if endpoint == "" {
			return fmt.Errorf("endpoint must not be empty")
		}
		d.endpoint = endpoint
		return nil
	}
}

// WithTimeout sets the per-request timeout.
// Default is 15 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(d *DuckDuckGo) error {
		if timeout <= 0 {
			return fmt.Errorf("search timeout must be positive, got %v", timeout)
		}
		d.http.SetTimeout(timeout)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *DuckDuckGo) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDuckDuckGo creates a search client against the HTML endpoint.
func NewDuckDuckGo(opts ...Option) (*DuckDuckGo, error) {
	d := &DuckDuckGo{
		http: resty.New().
			SetTimeout(defaultTimeout).
			SetHeader("User-Agent", "Mozilla/5.0 (compatible; jobscout/1.0)"),
		endpoint: defaultEndpoint,
		logger:   slog.Default().With("component", "duckduckgo"),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Search returns up to maxResults result URLs for query, in result-page
// order, deduplicated, with links on the provider's own domain excluded.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	resp, err := d.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get(d.endpoint)
	if err != nil {
		return nil, fmt.Errorf("querying search provider: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	seen := make(map[string]struct{})
	urls := []string{}
	doc.Find("a.result__a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		target, ok := resolveResult(href)
		if !ok {
			return true
		}
		if _, dup := seen[target]; dup {
			return true
		}
		seen[target] = struct{}{}
		urls = append(urls, target)
		return maxResults <= 0 || len(urls) < maxResults
	})

	d.logger.Debug("search results parsed", "query", query, "urls", len(urls))
	return urls, nil
}

// resolveResult turns a raw result href into the destination URL.
// DuckDuckGo wraps destinations in //duckduckgo.com/l/?uddg=<escaped>
// redirect links; anything still on the provider's domain is dropped.
func resolveResult(href string) (string, bool) {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	if strings.Contains(parsed.Host, providerDomain) {
		uddg := parsed.Query().Get("uddg")
		if uddg == "" {
			return "", false
		}
		unwrapped, err := url.Parse(uddg)
		if err != nil || strings.Contains(unwrapped.Host, providerDomain) {
			return "", false
		}
		parsed = unwrapped
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", false
	}
	return parsed.String(), true
}
