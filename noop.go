package drift

// Noop is the Tracker handed out wherever no activation exists, e.g. during
// server rendering. It never sends, never mutates anything and never panics,
// so it needs no locking and one shared instance serves the whole process.
var Noop Tracker = noopTracker{}

type noopTracker struct{}

func (noopTracker) Track(name string, data map[string]any) {}

func (noopTracker) Flush() {}
