package adapters

// HistorySource exposes the host's programmatic navigation primitive.
// Implement this interface to feed the emitter from a real navigation stack.
type HistorySource interface {
	// InterceptPush installs fn to run after every push navigation, with
	// the original push behavior preserved. The returned restore removes
	// the hook and restores the primitive; it must be safe to call once per
	// install.
	InterceptPush(fn func(url string)) (restore func())
	// OnPop subscribes fn to back/forward navigations. The returned cancel
	// removes the subscription.
	OnPop(fn func(url string)) (cancel func())
}

// RouteSignalSource is an optional router-level navigation-complete signal.
// Hosts without a router leave it unset; its absence is a normal case, not
// an error.
type RouteSignalSource interface {
	OnRouteComplete(fn func(url string)) (cancel func())
}

// UnloadSource signals that the page is going away and queued events must
// be flushed through the non-blocking channel.
type UnloadSource interface {
	OnUnload(fn func()) (cancel func())
}
