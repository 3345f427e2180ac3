// Package upstream talks to the external news endpoint. One Fetcher
// interface covers every integration flavor the dashboard has gone through;
// the transport is injected into the service rather than baked into it.
package upstream

import "context"

// Transport labels for metrics and logs.
const (
	TransportWebhook = "webhook"
	TransportVector  = "vector"
)

// Fetcher retrieves a raw news payload from somewhere. Implementations
// return the decoded JSON body; the caller decides what to make of its
// shape. Any transport, HTTP, or decode problem is an error — the upstream
// contract is "a JSON body containing news-like objects, anything else is
// a failure."
type Fetcher interface {
	Fetch(ctx context.Context) (any, error)

	// Transport identifies the implementation for metric labels.
	Transport() string
}
