package crawl

import "github.com/veilleur/jobscout/core"

// Monitor provides hooks to observe one crawl as it progresses.
// Implement this interface to track intermediate steps; every method may
// be called from the goroutine driving the crawl.
type Monitor interface {
	Start(query string)
	AfterProviderSearch(urls []string)
	PageFetched(url string, bytes int)
	PageSkipped(url string, reason string)
	PageScored(result *core.Result)
	Finish(results []*core.Result)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                  {}
func (n *noopMonitor) AfterProviderSearch(_ []string)  {}
func (n *noopMonitor) PageFetched(_ string, _ int)     {}
func (n *noopMonitor) PageSkipped(_ string, _ string)  {}
func (n *noopMonitor) PageScored(_ *core.Result)       {}
func (n *noopMonitor) Finish(_ []*core.Result)         {}
