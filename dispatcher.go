package drift

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/driftlabs/drift-go/adapters"
)

// Dispatcher owns the queue, decides when it drains, and hands batches to a
// transport. Two triggers drain the queue: reaching MaxBatchSize drains
// immediately, otherwise a debounce timer armed on the first event of the
// batch window fires after FlushInterval. Delivery is best-effort: one retry
// per batch, then the batch is dropped without surfacing anything to the
// host.
type Dispatcher struct {
	config          DispatcherConfig
	queue           *Queue
	selectTransport func() adapters.Transport
	blocked         func() bool
	logger          adapters.LoggerAdapter

	mu      sync.Mutex
	pending *time.Timer // debounce timer; at most one outstanding
}

func NewDispatcher(config DispatcherConfig, selectTransport func() adapters.Transport, blocked func() bool) *Dispatcher {
	return &Dispatcher{
		config:          config,
		queue:           NewQueue(),
		selectTransport: selectTransport,
		blocked:         blocked,
		logger:          adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn),
	}
}

// SetLoggerAdapter sets a custom logger adapter
func (d *Dispatcher) SetLoggerAdapter(logger LoggerAdapter) {
	d.logger = logger
}

// Enqueue appends event and applies the flush triggers. Events arriving
// while the privacy gate reports blocked are discarded.
func (d *Dispatcher) Enqueue(event TrackedEvent) {
	if d.isBlocked() {
		return
	}

	d.mu.Lock()
	d.queue.Enqueue(event)

	if d.queue.Len() >= d.config.MaxBatchSize {
		// Capacity trigger dominates the debounce timer.
		d.cancelPendingLocked()
		batch := d.queue.Drain()
		d.mu.Unlock()
		go d.send(batch)
		return
	}

	if d.pending == nil {
		// The batch window is measured from the first event; later events
		// never reset it.
		d.pending = time.AfterFunc(d.config.FlushInterval, d.flushTimer)
	}
	d.mu.Unlock()
}

// FlushNow cancels the debounce timer and drains whatever is queued. Used by
// the unload hook and exposed to hosts through Emitter.Flush. A no-op while
// blocked or empty.
func (d *Dispatcher) FlushNow() {
	d.mu.Lock()
	d.cancelPendingLocked()
	if d.isBlocked() || d.queue.IsEmpty() {
		d.mu.Unlock()
		return
	}
	batch := d.queue.Drain()
	d.mu.Unlock()
	d.send(batch)
}

func (d *Dispatcher) flushTimer() {
	d.mu.Lock()
	d.pending = nil
	batch := d.queue.Drain()
	d.mu.Unlock()
	if len(batch) > 0 {
		d.send(batch)
	}
}

func (d *Dispatcher) cancelPendingLocked() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

func (d *Dispatcher) isBlocked() bool {
	return d.blocked != nil && d.blocked()
}

// send serializes and delivers one batch. On transport rejection it arms a
// single detached retry with the strategy re-selected; a second rejection
// drops the batch. The retry timer is fire-and-forget and survives teardown.
func (d *Dispatcher) send(batch []TrackedEvent) {
	body, err := encodeBatch(batch)
	if err != nil {
		d.logger.Error("failed to encode batch: %v", err)
		return
	}

	batchID := uuid.NewString()
	d.logger.Debug("sending batch %s (%d events)", batchID, len(batch))

	if err := d.selectTransport().Send(d.config.Endpoint, body); err != nil {
		d.logger.Warn("batch %s rejected, retrying in %v: %v", batchID, d.config.RetryDelay, err)
		time.AfterFunc(d.config.RetryDelay, func() {
			if err := d.selectTransport().Send(d.config.Endpoint, body); err != nil {
				d.logger.Debug("batch %s dropped after retry: %v", batchID, err)
			}
		})
		return
	}
	d.logger.Debug("batch %s delivered", batchID)
}

// encodeBatch renders the wire form: always a JSON array, even for a batch
// of one.
func encodeBatch(batch []TrackedEvent) ([]byte, error) {
	wire := make([]wireEvent, 0, len(batch))
	for _, ev := range batch {
		w := wireEvent{
			WebsiteID: ev.SiteID,
			Type:      string(ev.Kind),
			URL:       ev.URL,
			Referrer:  ev.Referrer,
		}
		if ev.Kind == KindEvent {
			w.EventName = ev.Name
			w.EventData = ev.Payload
		}
		wire = append(wire, w)
	}
	return json.Marshal(wire)
}
