package adapters

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNetHTTPAdapter_Send(t *testing.T) {
	var received []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Error("expected Content-Type: application/json")
		}
		received, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	adapter := NewNetHTTPAdapter()
	body := []byte(`[{"website_id":"site_1","type":"pageview","url":"/home"}]`)

	if err := adapter.Send(server.URL+"/api/collect", body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(received) != string(body) {
		t.Fatalf("expected body to pass through unchanged, got %s", received)
	}
}

func TestNetHTTPAdapter_StatusNotInspected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := NewNetHTTPAdapter()
	// A completed request of any status is a delivery; only transport-level
	// rejection fails.
	if err := adapter.Send(server.URL, []byte(`[]`)); err != nil {
		t.Fatalf("expected nil error for a 5xx response, got %v", err)
	}
}

func TestNetHTTPAdapter_SendConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	adapter := NewNetHTTPAdapter()
	err := adapter.Send(server.URL, []byte(`[]`))
	if err == nil {
		t.Fatal("expected error for a closed server")
	}
	var de *DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DeliveryError, got %T", err)
	}
}

func TestNetHTTPAdapter_SendInvalidURL(t *testing.T) {
	adapter := NewNetHTTPAdapter()
	if err := adapter.Send("ht!tp://invalid", []byte(`[]`)); err == nil {
		t.Fatal("expected error for invalid URL")
	}
}
