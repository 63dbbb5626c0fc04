// Package lifecycle holds process-wide start/stop bounds.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start hook and graceful shutdown step.
const DefaultTimeout = 10 * time.Second
