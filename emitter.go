package drift

import (
	"sync"
	"time"

	"github.com/driftlabs/drift-go/adapters"
)

// Tracker is the surface handed to host application code. Every method is
// safe to call in any state and never panics into the host.
type Tracker interface {
	// Track enqueues a custom event for the current URL.
	Track(name string, data map[string]any)
	// Flush drains pending events immediately, bypassing the debounce timer.
	Flush()
}

// Emitter is the active Tracker: it watches navigation, batches events and
// delivers them to the collect endpoint.
type Emitter struct {
	config     Config
	dispatcher *Dispatcher
	dedup      *DedupFilter
	logger     LoggerAdapter
	beacon     Transport
	http       Transport

	mu      sync.Mutex
	watcher *Watcher
	blocked bool
}

var _ Tracker = (*Emitter)(nil)

// NewEmitter builds an emitter from config. It never fails: a missing
// SiteID leaves the emitter permanently blocked rather than erroring, so
// hosts can construct unconditionally.
func NewEmitter(config Config) *Emitter {
	if config.MaxBatchSize <= 0 {
		config.MaxBatchSize = 10
	}
	if config.FlushInterval == 0 {
		config.FlushInterval = 500 * time.Millisecond
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = 2 * time.Second
	}
	if config.DedupWindow == 0 {
		config.DedupWindow = 100 * time.Millisecond
	}

	e := &Emitter{
		config: config,
		dedup:  NewDedupFilter(config.DedupWindow),
	}

	// Use provided adapters or defaults
	if config.Adapters.Logger != nil {
		e.logger = config.Adapters.Logger
	} else {
		e.logger = adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn)
	}
	e.beacon = config.Adapters.Beacon
	if config.Adapters.HTTP != nil {
		e.http = config.Adapters.HTTP
	} else {
		e.http = adapters.NewNetHTTPAdapter()
	}

	dispatcherConfig := DispatcherConfig{
		SiteID:        config.SiteID,
		Endpoint:      CollectEndpoint(config.EndpointBase),
		MaxBatchSize:  config.MaxBatchSize,
		FlushInterval: config.FlushInterval,
		RetryDelay:    config.RetryDelay,
	}
	e.dispatcher = NewDispatcher(dispatcherConfig, e.selectTransport, e.isBlocked)
	e.dispatcher.SetLoggerAdapter(e.logger)
	return e
}

// Start evaluates the privacy gate, installs the navigation hooks, and
// enqueues a pageview for the current location. Starting a running emitter
// first tears its hooks down, so rapid reconfiguration never doubles
// listeners.
func (e *Emitter) Start() {
	e.mu.Lock()
	if e.watcher != nil {
		e.watcher.Close()
		e.watcher = nil
	}
	e.mu.Unlock()

	e.refreshBlocked()
	if e.config.SiteID == "" {
		// One diagnostic per activation; the emitter stays blocked but must
		// not disturb the host.
		e.logger.Warn("siteId is missing, no events will be sent")
	}

	w := NewWatcher(e.config.Adapters.History, e.config.Adapters.Router, e.config.Adapters.Unload, e.pageview, e.Flush)
	e.mu.Lock()
	e.watcher = w
	e.mu.Unlock()

	if env := e.config.Adapters.Environment; env != nil {
		e.pageview(env.CurrentURL())
	}
}

// Track enqueues a custom event for the current URL. It never reports
// failure to the host; a blocked emitter drops the event silently.
func (e *Emitter) Track(name string, data map[string]any) {
	if name == "" {
		return
	}
	var url, referrer string
	if env := e.config.Adapters.Environment; env != nil {
		url = env.CurrentURL()
		referrer = env.Referrer()
	}
	e.dispatcher.Enqueue(TrackedEvent{
		SiteID:   e.config.SiteID,
		Kind:     KindEvent,
		URL:      url,
		Referrer: referrer,
		Name:     name,
		Payload:  data,
	})
}

// Flush drains pending events immediately.
func (e *Emitter) Flush() {
	e.dispatcher.FlushNow()
}

// Close removes all navigation hooks and flushes what is queued. A retry
// already armed by a failed delivery is not cancelled and may still fire
// after Close returns.
func (e *Emitter) Close() {
	e.mu.Lock()
	w := e.watcher
	e.watcher = nil
	e.mu.Unlock()

	if w != nil {
		w.Close()
	}
	e.dispatcher.FlushNow()
}

// pageview runs every detected navigation through the privacy gate and the
// dedup filter before it reaches the queue. The gate is recomputed here so a
// privacy signal toggled mid-session takes effect on the next navigation.
func (e *Emitter) pageview(url string) {
	e.refreshBlocked()
	if e.isBlocked() {
		return
	}
	if e.dedup.ShouldSuppress(url, time.Now()) {
		return
	}
	ev := TrackedEvent{
		SiteID: e.config.SiteID,
		Kind:   KindPageview,
		URL:    url,
	}
	if env := e.config.Adapters.Environment; env != nil {
		ev.Referrer = env.Referrer()
	}
	e.dispatcher.Enqueue(ev)
}

// selectTransport prefers the non-blocking beacon channel when it is ready,
// re-evaluated for every delivery attempt since readiness can change.
func (e *Emitter) selectTransport() adapters.Transport {
	if e.beacon != nil {
		if rt, ok := e.beacon.(adapters.ReadyTransport); !ok || rt.Ready() {
			return e.beacon
		}
	}
	return e.http
}

func (e *Emitter) isBlocked() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.blocked
}

func (e *Emitter) refreshBlocked() {
	b := isBlocked(e.config, e.config.Adapters.Environment)
	e.mu.Lock()
	e.blocked = b
	e.mu.Unlock()
}
