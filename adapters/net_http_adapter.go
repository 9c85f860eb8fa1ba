package adapters

import (
	"bytes"
	"io"
	"net/http"
	"time"
)

// NetHTTPAdapter is the buffered delivery strategy using the net/http
// package. The response status is deliberately not inspected: only a
// request that fails to complete counts as a delivery failure.
type NetHTTPAdapter struct {
	client *http.Client
}

// Ensure NetHTTPAdapter implements Transport interface
var _ Transport = (*NetHTTPAdapter)(nil)

// NewNetHTTPAdapter creates a new NetHTTPAdapter instance.
func NewNetHTTPAdapter() *NetHTTPAdapter {
	return &NetHTTPAdapter{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts body to the endpoint with a JSON content type.
func (h *NetHTTPAdapter) Send(endpoint string, body []byte) error {
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return &DeliveryError{Err: err}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}
