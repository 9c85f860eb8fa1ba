package drift

// Watcher installs the navigation hooks that feed automatic pageviews and
// the unload flush. Every hook installed by NewWatcher is reversed by Close:
// the history primitive is restored and all subscriptions are cancelled. A
// Watcher is single-use; reactivation builds a new one.
type Watcher struct {
	restoreHistory func()
	cancelPop      func()
	cancelRoute    func()
	cancelUnload   func()
}

// NewWatcher wires the detection hooks. onNavigate receives the URL of each
// detected transition; flush runs on the unload signal. The router source is
// an optional collaborator — hosts without one leave it nil and the history
// hooks carry the whole load.
func NewWatcher(history HistorySource, router RouteSignalSource, unload UnloadSource, onNavigate func(url string), flush func()) *Watcher {
	w := &Watcher{}
	if history != nil {
		w.restoreHistory = history.InterceptPush(onNavigate)
		w.cancelPop = history.OnPop(onNavigate)
	}
	if router != nil {
		// Fires alongside the history hooks for the same transition; the
		// dedup filter reconciles the double report.
		w.cancelRoute = router.OnRouteComplete(onNavigate)
	}
	if unload != nil {
		w.cancelUnload = unload.OnUnload(flush)
	}
	return w
}

// Close restores the history primitive and removes every listener. Safe to
// call more than once.
func (w *Watcher) Close() {
	for _, undo := range []func(){w.restoreHistory, w.cancelPop, w.cancelRoute, w.cancelUnload} {
		if undo != nil {
			undo()
		}
	}
	w.restoreHistory = nil
	w.cancelPop = nil
	w.cancelRoute = nil
	w.cancelUnload = nil
}
