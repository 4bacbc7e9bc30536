// Package delivery holds the inbound surfaces of the service.
package delivery

import "context"

// Delivery is a long-running inbound server started by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
