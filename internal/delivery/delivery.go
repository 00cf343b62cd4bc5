// Package delivery defines the transports that expose the map engine.
package delivery

import "context"

// Delivery is a long-running transport started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
