package crawl

import "context"

// SearchProvider supplies candidate URLs for a query. Implementations
// return at most maxResults URLs, deduplicated, with links on the
// provider's own domain excluded. A provider error is downgraded by the
// Crawler to an empty result list, never propagated.
type SearchProvider interface {
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
}

// Fetcher retrieves the raw text of a page within a bounded timeout.
// A fetch error abandons that URL only; it never aborts the batch.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
