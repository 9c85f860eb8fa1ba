package drift

import (
	"sync"
	"time"
)

// DedupFilter reconciles the redundant navigation hooks: the history-level
// and router-level detectors may both fire for one logical transition, so a
// pageview for the same URL arriving inside the window is treated as the
// same navigation. The window is wider than double-fire jitter but narrower
// than any real back-to-back navigation to the same URL.
type DedupFilter struct {
	mu     sync.Mutex
	window time.Duration

	lastURL string
	lastAt  time.Time
	seen    bool
}

// NewDedupFilter creates a filter with the given suppression window.
func NewDedupFilter(window time.Duration) *DedupFilter {
	return &DedupFilter{window: window}
}

// ShouldSuppress reports whether a pageview for url arriving at now
// duplicates the last accepted navigation. Suppressed events leave the
// record untouched; accepted ones overwrite it unconditionally.
func (f *DedupFilter) ShouldSuppress(url string, now time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seen && url == f.lastURL && now.Sub(f.lastAt) < f.window {
		return true
	}
	f.lastURL = url
	f.lastAt = now
	f.seen = true
	return false
}
