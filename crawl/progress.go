package crawl

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/veilleur/jobscout/core"
)

// ProgressMonitor is a Monitor that reports crawl progress to a writer,
// typically os.Stderr. It is safe for concurrent callbacks.
type ProgressMonitor struct {
	writer     io.Writer
	mu         sync.Mutex
	startTime  time.Time
	candidates int
	fetched    int
	skipped    int
	scored     int
}

var _ Monitor = (*ProgressMonitor)(nil)

// NewProgressMonitor creates a progress monitor writing to writer.
func NewProgressMonitor(writer io.Writer) *ProgressMonitor {
	return &ProgressMonitor{writer: writer}
}

// Start begins tracking a crawl.
func (p *ProgressMonitor) Start(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()
	p.candidates = 0
	p.fetched = 0
	p.skipped = 0
	p.scored = 0
	fmt.Fprintf(p.writer, "searching: %s\n", query)
}

// AfterProviderSearch records how many candidate URLs the provider returned.
func (p *ProgressMonitor) AfterProviderSearch(urls []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.candidates = len(urls)
	fmt.Fprintf(p.writer, "candidates: %d\n", p.candidates)
}

// PageFetched counts a successfully downloaded page.
func (p *ProgressMonitor) PageFetched(url string, bytes int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fetched++
}

// PageSkipped counts a page dropped before scoring and says why.
func (p *ProgressMonitor) PageSkipped(url string, reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.skipped++
	fmt.Fprintf(p.writer, "skipped %s (%s)\n", url, reason)
}

// PageScored counts a page that made it into the result list.
func (p *ProgressMonitor) PageScored(result *core.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scored++
}

// Finish reports the crawl summary.
func (p *ProgressMonitor) Finish(results []*core.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	elapsed := time.Since(p.startTime).Round(time.Millisecond)
	fmt.Fprintf(p.writer, "done: %d candidates, %d fetched, %d skipped, %d ranked in %s\n",
		p.candidates, p.fetched, p.skipped, len(results), elapsed)
}
