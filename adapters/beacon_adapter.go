package adapters

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"
)

var (
	errBeaconClosed = errors.New("beacon adapter closed")
	errBeaconFull   = errors.New("beacon buffer full")
)

// BeaconAdapter is the non-blocking delivery strategy. Send copies the body
// into a bounded buffer and returns immediately; a background sender posts
// queued batches and discards responses. Acceptance into the buffer is
// success and nothing later is reported back, so callers are never blocked
// or failed by slow networks — the channel of choice for the unload path.
type BeaconAdapter struct {
	client *http.Client
	sends  chan beaconSend
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

type beaconSend struct {
	endpoint string
	body     []byte
}

// Ensure BeaconAdapter implements ReadyTransport interface
var _ ReadyTransport = (*BeaconAdapter)(nil)

// NewBeaconAdapter creates a beacon adapter with the given buffer capacity.
// A capacity of zero or less falls back to 16 batches.
func NewBeaconAdapter(buffer int) *BeaconAdapter {
	if buffer <= 0 {
		buffer = 16
	}
	b := &BeaconAdapter{
		client: &http.Client{Timeout: 10 * time.Second},
		sends:  make(chan beaconSend, buffer),
	}
	b.wg.Add(1)
	go b.run()
	return b
}

func (b *BeaconAdapter) run() {
	defer b.wg.Done()
	for s := range b.sends {
		req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewReader(s.body))
		if err != nil {
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := b.client.Do(req)
		if err != nil {
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

// Send queues a copy of body for transmission and returns without waiting.
// It fails only when the buffer is full or the adapter is closed.
func (b *BeaconAdapter) Send(endpoint string, body []byte) error {
	buf := make([]byte, len(body))
	copy(buf, body)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return &DeliveryError{Err: errBeaconClosed}
	}
	select {
	case b.sends <- beaconSend{endpoint: endpoint, body: buf}:
		return nil
	default:
		return &DeliveryError{Err: errBeaconFull}
	}
}

// Ready reports whether the buffer can accept another batch.
func (b *BeaconAdapter) Ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed && len(b.sends) < cap(b.sends)
}

// Close stops accepting batches and waits for queued ones to go out.
func (b *BeaconAdapter) Close() error {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.sends)
	}
	b.mu.Unlock()
	b.wg.Wait()
	return nil
}
