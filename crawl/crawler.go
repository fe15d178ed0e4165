package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/errgroup"

	"github.com/veilleur/jobscout/ai"
	"github.com/veilleur/jobscout/cache"
	"github.com/veilleur/jobscout/core"
	"github.com/veilleur/jobscout/extract"
	"github.com/veilleur/jobscout/keywords"
	"github.com/veilleur/jobscout/textproc"
)

// defaultExcerptLimit bounds how much page text is embedded and kept on a
// result. Generous enough for a posting's lede, small enough to keep
// encoding cheap.
const defaultExcerptLimit = 1200

// Crawler turns one query into a ranked list of relevant pages.
// The keyword sets, embedder, provider, and fetcher it holds are read-only
// after construction, so a single Crawler is safe for concurrent Search
// calls.
type Crawler struct {
	provider     SearchProvider
	fetcher      Fetcher
	embedder     ai.Embedder
	classifier   *keywords.Classifier
	vectors      *cache.TTL[[]float32]
	pool         *ants.Pool
	monitor      Monitor
	excerptLimit int
	logger       *slog.Logger
}

// Option configures a Crawler.
type Option func(*Crawler) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size used to offload embedding calls
// and the provider search. Default is runtime.NumCPU() / 2, minimum 1.
func WithPoolSize(size int) Option {
	return func(c *Crawler) error {
		if size < 1 {
			size = 1
		}
		if c.pool != nil {
			c.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		c.pool = pool
		return nil
	}
}

// WithCacheTTL sets how long cached embeddings stay valid.
// Default is cache.DefaultTTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Crawler) error {
		c.vectors = cache.NewTTL[[]float32](ttl)
		return nil
	}
}

// WithExcerptLimit bounds the page excerpt, in runes, that gets embedded
// and stored on results. Default is 1200.
func WithExcerptLimit(limit int) Option {
	return func(c *Crawler) error {
		if limit < 1 {
			return fmt.Errorf("excerpt limit must be positive, got %d", limit)
		}
		c.excerptLimit = limit
		return nil
	}
}

// WithMonitor sets a crawl monitor. Default is a no-op.
func WithMonitor(monitor Monitor) Option {
	return func(c *Crawler) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		c.monitor = monitor
		return nil
	}
}

// New creates a Crawler from its collaborators.
func New(
	provider SearchProvider,
	fetcher Fetcher,
	embedder ai.Embedder,
	classifier *keywords.Classifier,
	opts ...Option,
) (*Crawler, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	c := &Crawler{
		provider:     provider,
		fetcher:      fetcher,
		embedder:     embedder,
		classifier:   classifier,
		vectors:      cache.NewTTL[[]float32](cache.DefaultTTL),
		pool:         pool,
		monitor:      &noopMonitor{},
		excerptLimit: defaultExcerptLimit,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(c); optErr != nil {
			c.Release()
			return nil, optErr
		}
	}
	return c, nil
}

// Release frees the worker pool. The Crawler must not be used afterwards.
func (c *Crawler) Release() {
	if c.pool != nil {
		c.pool.Release()
	}
}

// Search runs the full pipeline for query and returns results ranked by
// descending blended score; equal scores keep their discovery order.
// Provider failure yields an empty list and a warning, not an error. Page
// failures are isolated. Only query embedding failure or context
// cancellation return an error.
func (c *Crawler) Search(ctx context.Context, query string, maxResults int) ([]*core.Result, error) {
	c.monitor.Start(query)

	intent := c.classifier.InferIntent(query)
	c.logger.Info("starting crawl",
		"query", query,
		"domain", intent.Domain,
		"maxResults", maxResults)

	urls, err := c.searchCandidates(ctx, query, maxResults)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("search provider failed, returning no results", "err", err)
		empty := []*core.Result{}
		c.monitor.Finish(empty)
		return empty, nil
	}
	c.monitor.AfterProviderSearch(urls)

	queryVec, err := c.embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	queryTokens := textproc.Tokenize(intent.Normalized)

	pages := c.fetchAll(ctx, urls)

	results := []*core.Result{}
	for i, url := range urls {
		result := c.scorePage(ctx, query, url, pages[i], queryVec, queryTokens)
		if result != nil {
			results = append(results, result)
			c.monitor.PageScored(result)
		}
	}

	// Stable: equal scores keep discovery order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	c.logger.Info("crawl finished", "query", query, "results", len(results))
	c.monitor.Finish(results)
	return results, nil
}

// searchCandidates runs the provider's synchronous search on the worker
// pool so it does not occupy the caller.
func (c *Crawler) searchCandidates(ctx context.Context, query string, maxResults int) ([]string, error) {
	type outcome struct {
		urls []string
		err  error
	}
	done := make(chan outcome, 1)

	if err := c.pool.Submit(func() {
		urls, err := c.provider.Search(ctx, query, maxResults)
		done <- outcome{urls: urls, err: err}
	}); err != nil {
		return nil, err
	}

	select {
	case out := <-done:
		return out.urls, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fetchAll downloads all candidate pages concurrently. The returned slice
// is indexed like urls; a failed fetch leaves its slot empty. The whole
// batch is awaited before returning.
func (c *Crawler) fetchAll(ctx context.Context, urls []string) []string {
	pages := make([]string, len(urls))

	g := new(errgroup.Group)
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			text, err := c.fetcher.Fetch(ctx, url)
			if err != nil {
				c.logger.Warn("fetch failed", "url", url, "err", err)
				c.monitor.PageSkipped(url, "fetch failed")
				return nil // failures are isolated, never abort the batch
			}
			pages[i] = text
			c.monitor.PageFetched(url, len(text))
			return nil
		})
	}
	_ = g.Wait()

	return pages
}

// scorePage runs extraction, the relevance gate, embedding, and scoring
// for one fetched page. Returns nil when the page is skipped for any
// reason; skips are logged, never propagated.
func (c *Crawler) scorePage(ctx context.Context, query, url, page string, queryVec []float32, queryTokens []string) *core.Result {
	if page == "" {
		return nil
	}

	blocks := extract.Blocks(page)
	if len(blocks) == 0 {
		c.logger.Debug("no readable text", "url", url)
		c.monitor.PageSkipped(url, "no readable text")
		return nil
	}

	text := extract.Excerpt(blocks, 0)
	pageTokens := textproc.Tokenize(text)

	// Cheap keyword gate before the expensive embedding call.
	if !c.classifier.Relevant(pageTokens) {
		c.logger.Debug("relevance gate rejected page", "url", url)
		c.monitor.PageSkipped(url, "irrelevant")
		return nil
	}

	excerpt := extract.Excerpt(blocks, c.excerptLimit)
	pageVec, err := c.embed(ctx, excerpt)
	if err != nil {
		c.logger.Warn("embedding page failed", "url", url, "err", err)
		c.monitor.PageSkipped(url, "embedding failed")
		return nil
	}

	cosine := CosineSimilarity(queryVec, pageVec)
	ratio := KeywordMatchRatio(queryTokens, pageTokens)
	recent := c.classifier.HasRecencySignal(text)
	score := BlendScore(cosine, ratio, recent)

	skills := c.classifier.DetectSkills(pageTokens)

	c.logger.Debug("scored page",
		"url", url,
		"cosine", cosine,
		"ratio", ratio,
		"recent", recent,
		"score", score)

	return &core.Result{
		Query:    query,
		URL:      url,
		Title:    extract.Title(page, url),
		Excerpt:  excerpt,
		Vector:   pageVec,
		Score:    score,
		Contract: c.classifier.ContractType(pageTokens),
		Skills:   skills,
	}
}

// embed returns the embedding for text, consulting the TTL cache first and
// running the encode call on the worker pool so concurrent fetches are not
// stalled behind it.
func (c *Crawler) embed(ctx context.Context, text string) ([]float32, error) {
	key := cache.ContentKey(text)
	if vec, ok := c.vectors.Get(key); ok {
		return vec, nil
	}

	type outcome struct {
		vec []float32
		err error
	}
	done := make(chan outcome, 1)

	if err := c.pool.Submit(func() {
		vec, err := c.embedder.EmbedText(ctx, text)
		done <- outcome{vec: vec, err: err}
	}); err != nil {
		return nil, err
	}

	select {
	case out := <-done:
		if out.err != nil {
			return nil, out.err
		}
		c.vectors.Set(key, out.vec)
		return out.vec, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
