package adapters

import "fmt"

// DeliveryError reports a transport-level rejection: the request never
// completed. HTTP status codes are not part of this contract — a response of
// any status counts as delivered.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Transport is an interface for batch delivery.
// Implement this interface to use custom delivery channels.
type Transport interface {
	// Send delivers body (a JSON array of events) to endpoint.
	//
	// Returns *DeliveryError when the batch could not be handed to the
	// network.
	Send(endpoint string, body []byte) error
}

// ReadyTransport is a Transport whose availability can change at runtime,
// letting the emitter re-select a strategy per delivery attempt.
type ReadyTransport interface {
	Transport
	Ready() bool
}
