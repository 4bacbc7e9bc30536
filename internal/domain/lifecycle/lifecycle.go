// Package lifecycle defines shared timing values for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and shutdown hooks.
const DefaultTimeout = 10 * time.Second
