package drift

import (
	"strings"
	"time"

	"github.com/driftlabs/drift-go/adapters"
)

// Re-export adapter types for convenience
type (
	Environment       = adapters.Environment
	HistorySource     = adapters.HistorySource
	RouteSignalSource = adapters.RouteSignalSource
	UnloadSource      = adapters.UnloadSource
	Transport         = adapters.Transport
	DeliveryError     = adapters.DeliveryError
	LoggerAdapter     = adapters.LoggerAdapter
	LogLevel          = adapters.LogLevel
)

// EventKind distinguishes automatic pageviews from host-triggered custom
// events. The values double as the wire `type` field.
type EventKind string

const (
	KindPageview EventKind = "pageview"
	KindEvent    EventKind = "event"
)

// TrackedEvent is the unit moving through the queue. Kind is always
// consistent with the presence of Name/Payload: a pageview never carries a
// name, a custom event always does.
type TrackedEvent struct {
	SiteID   string
	Kind     EventKind
	URL      string
	Referrer string
	Name     string         // custom events only, recommended <=50 chars
	Payload  map[string]any // custom events only
}

// wireEvent is the collect-endpoint representation of one TrackedEvent.
type wireEvent struct {
	WebsiteID string         `json:"website_id"`
	Type      string         `json:"type"`
	URL       string         `json:"url"`
	Referrer  string         `json:"referrer,omitempty"`
	EventName string         `json:"event_name,omitempty"`
	EventData map[string]any `json:"event_data,omitempty"`
}

// Config configures one emitter activation.
type Config struct {
	// SiteID is the tenant identifier. Without it the emitter logs one
	// warning and stays blocked for the whole activation.
	SiteID string
	// EndpointBase is the collection origin, e.g.
	// "https://analytics.example.com". Empty means same-origin relative
	// delivery to /api/collect.
	EndpointBase string
	// RespectPrivacySignals honors the host's do-not-track and global
	// privacy control opt-outs. nil means true.
	RespectPrivacySignals *bool
	// Disabled blocks the emitter regardless of any other signal.
	Disabled bool

	MaxBatchSize  int           // capacity trigger, default 10
	FlushInterval time.Duration // debounce window, default 500ms
	RetryDelay    time.Duration // delay before the single retry, default 2s
	DedupWindow   time.Duration // same-URL pageview suppression, default 100ms

	Adapters struct {
		Environment Environment
		History     HistorySource
		Router      RouteSignalSource // optional navigation-complete signal
		Unload      UnloadSource
		Beacon      Transport // non-blocking channel, preferred when ready
		HTTP        Transport
		Logger      LoggerAdapter
	}
}

func (c Config) respectSignals() bool {
	return c.RespectPrivacySignals == nil || *c.RespectPrivacySignals
}

// DispatcherConfig carries the delivery settings down to the Dispatcher.
type DispatcherConfig struct {
	SiteID        string
	Endpoint      string
	MaxBatchSize  int
	FlushInterval time.Duration
	RetryDelay    time.Duration
}

const collectPath = "/api/collect"

// CollectEndpoint resolves the delivery target from an endpoint base.
// Trailing slashes on the base never produce a doubled path.
func CollectEndpoint(base string) string {
	return strings.TrimRight(base, "/") + collectPath
}
