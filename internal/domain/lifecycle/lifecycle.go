package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a transport.
const DefaultTimeout = 10 * time.Second
