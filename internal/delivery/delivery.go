// Package delivery defines the contract every transport-facing server
// (HTTP today, anything else later) fulfils so the entrypoint can run
// them uniformly.
package delivery

import "context"

// Delivery is a long-running server that blocks in Serve until the
// process shuts down or the server fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
