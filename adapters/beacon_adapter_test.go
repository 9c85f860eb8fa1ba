package adapters

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestBeaconAdapter_SendIsNonBlocking(t *testing.T) {
	var mu sync.Mutex
	var bodies [][]byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, body)
		mu.Unlock()
	}))
	defer server.Close()

	adapter := NewBeaconAdapter(4)
	body := []byte(`[{"website_id":"site_1","type":"pageview","url":"/home"}]`)

	start := time.Now()
	if err := adapter.Send(server.URL, body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("Send must return without waiting for delivery, took %v", elapsed)
	}

	// Close waits for the queued batch to go out.
	adapter.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(bodies) != 1 || string(bodies[0]) != string(body) {
		t.Fatalf("expected the queued batch to be delivered, got %d requests", len(bodies))
	}
}

func TestBeaconAdapter_ContentType(t *testing.T) {
	contentType := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType <- r.Header.Get("Content-Type")
	}))
	defer server.Close()

	adapter := NewBeaconAdapter(1)
	if err := adapter.Send(server.URL, []byte(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	adapter.Close()

	select {
	case ct := <-contentType:
		if ct != "application/json" {
			t.Fatalf("expected application/json, got %q", ct)
		}
	default:
		t.Fatal("expected a request to be delivered")
	}
}

func TestBeaconAdapter_BufferFull(t *testing.T) {
	inFlight := make(chan struct{}, 4)
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inFlight <- struct{}{}
		<-release
	}))
	defer server.Close()

	adapter := NewBeaconAdapter(1)
	defer adapter.Close()
	defer close(release) // unparks the sender so Close can finish

	if err := adapter.Send(server.URL, []byte(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-inFlight // sender is now parked in the slow request

	if err := adapter.Send(server.URL, []byte(`[]`)); err != nil {
		t.Fatalf("expected the buffer to hold one more batch: %v", err)
	}
	if adapter.Ready() {
		t.Fatal("expected Ready to report a full buffer")
	}
	err := adapter.Send(server.URL, []byte(`[]`))
	if err == nil {
		t.Fatal("expected rejection when the buffer is full")
	}
	var de *DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DeliveryError, got %T", err)
	}
}

func TestBeaconAdapter_SendAfterClose(t *testing.T) {
	adapter := NewBeaconAdapter(1)
	adapter.Close()

	if adapter.Ready() {
		t.Fatal("expected Ready to be false after Close")
	}
	if err := adapter.Send("http://test.local", []byte(`[]`)); err == nil {
		t.Fatal("expected error after Close")
	}
}

func TestBeaconAdapter_CloseIsIdempotent(t *testing.T) {
	adapter := NewBeaconAdapter(1)
	adapter.Close()
	adapter.Close()
}

func TestBeaconAdapter_CopiesBody(t *testing.T) {
	received := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
	}))
	defer server.Close()

	adapter := NewBeaconAdapter(1)
	body := []byte(`[{"url":"/a"}]`)
	if err := adapter.Send(server.URL, body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Caller reuse of the slice must not corrupt the queued batch.
	copy(body, []byte(`[{"url":"/X"}]`))
	adapter.Close()

	select {
	case got := <-received:
		if string(got) != `[{"url":"/a"}]` {
			t.Fatalf("expected the original body, got %s", got)
		}
	default:
		t.Fatal("expected a request to be delivered")
	}
}
