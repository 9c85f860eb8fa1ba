package adapters

import "sync"

// MemoryPage is a complete in-process host page. Embedding hosts (and the
// tests) drive it through Navigate/Back/RouteComplete/Unload and the emitter
// observes those transitions through the standard hook interfaces. It
// implements Environment, HistorySource, RouteSignalSource and UnloadSource.
type MemoryPage struct {
	mu       sync.Mutex
	url      string
	referrer string
	dnt      string
	gpc      bool

	nextID     int
	pushHooks  map[int]func(url string)
	popSubs    map[int]func(url string)
	routeSubs  map[int]func(url string)
	unloadSubs map[int]func()
}

var (
	_ Environment       = (*MemoryPage)(nil)
	_ HistorySource     = (*MemoryPage)(nil)
	_ RouteSignalSource = (*MemoryPage)(nil)
	_ UnloadSource      = (*MemoryPage)(nil)
)

// NewMemoryPage creates a page currently located at url.
func NewMemoryPage(url string) *MemoryPage {
	return &MemoryPage{
		url:        url,
		pushHooks:  make(map[int]func(url string)),
		popSubs:    make(map[int]func(url string)),
		routeSubs:  make(map[int]func(url string)),
		unloadSubs: make(map[int]func()),
	}
}

// CurrentURL returns the page's current path.
func (p *MemoryPage) CurrentURL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

// Referrer returns the previous URL after a push navigation.
func (p *MemoryPage) Referrer() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.referrer
}

// DoNotTrack returns the simulated do-not-track signal.
func (p *MemoryPage) DoNotTrack() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dnt
}

// GlobalPrivacyControl reports the simulated GPC flag.
func (p *MemoryPage) GlobalPrivacyControl() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gpc
}

// SetDoNotTrack sets the do-not-track signal ("1" opts out).
func (p *MemoryPage) SetDoNotTrack(v string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dnt = v
}

// SetGlobalPrivacyControl sets the GPC opt-out flag.
func (p *MemoryPage) SetGlobalPrivacyControl(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gpc = v
}

// SetReferrer overrides the referrer, e.g. for the landing navigation.
func (p *MemoryPage) SetReferrer(referrer string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.referrer = referrer
}

// InterceptPush registers fn to run after each push navigation.
func (p *MemoryPage) InterceptPush(fn func(url string)) (restore func()) {
	return p.register(p.pushHooks, fn)
}

// OnPop subscribes fn to back/forward transitions.
func (p *MemoryPage) OnPop(fn func(url string)) (cancel func()) {
	return p.register(p.popSubs, fn)
}

// OnRouteComplete subscribes fn to the router navigation-complete signal.
func (p *MemoryPage) OnRouteComplete(fn func(url string)) (cancel func()) {
	return p.register(p.routeSubs, fn)
}

// OnUnload subscribes fn to the unload signal.
func (p *MemoryPage) OnUnload(fn func()) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.unloadSubs[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.unloadSubs, id)
	}
}

func (p *MemoryPage) register(subs map[int]func(url string), fn func(url string)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	subs[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(subs, id)
	}
}

// Navigate performs a push navigation: the previous URL becomes the
// referrer, then every push hook observes the new URL. The original
// primitive (moving the page) always runs before the hooks.
func (p *MemoryPage) Navigate(url string) {
	p.mu.Lock()
	p.referrer = p.url
	p.url = url
	hooks := snapshotURLSubs(p.pushHooks)
	p.mu.Unlock()
	for _, fn := range hooks {
		fn(url)
	}
}

// Back delivers a back/forward transition to url.
func (p *MemoryPage) Back(url string) {
	p.mu.Lock()
	p.referrer = p.url
	p.url = url
	subs := snapshotURLSubs(p.popSubs)
	p.mu.Unlock()
	for _, fn := range subs {
		fn(url)
	}
}

// RouteComplete fires the router-level navigation-complete signal for url.
func (p *MemoryPage) RouteComplete(url string) {
	p.mu.Lock()
	p.url = url
	subs := snapshotURLSubs(p.routeSubs)
	p.mu.Unlock()
	for _, fn := range subs {
		fn(url)
	}
}

// Unload fires the unload signal.
func (p *MemoryPage) Unload() {
	p.mu.Lock()
	subs := make([]func(), 0, len(p.unloadSubs))
	for _, fn := range p.unloadSubs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func snapshotURLSubs(subs map[int]func(url string)) []func(url string) {
	out := make([]func(url string), 0, len(subs))
	for _, fn := range subs {
		out = append(out, fn)
	}
	return out
}
