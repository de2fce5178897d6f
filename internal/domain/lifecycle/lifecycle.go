// Package lifecycle holds process lifecycle constants shared across
// deliveries and infrastructure.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of any single component.
const DefaultTimeout = 10 * time.Second
