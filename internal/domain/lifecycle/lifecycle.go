// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to start or stop
// before its fx lifecycle hook is abandoned.
const DefaultTimeout = 15 * time.Second
