// Package config holds tunable defaults for the event pipeline: ring
// buffer sizing, HTTP timeouts, and retry/backoff bounds.
package config

import "time"

// Default configuration constants for the ring buffer, transport, and
// retry policy.
const (
	// DefaultRingBufferCapacity is the ring buffer size used when a caller
	// does not override it at Initialize time.
	DefaultRingBufferCapacity = 100

	// DefaultHandlerJoinTimeout bounds how long Terminate waits for the
	// consumer goroutine to drain the ring buffer and exit.
	DefaultHandlerJoinTimeout = 5 * time.Second

	// DefaultHTTPTimeout bounds a single POST (event or throttle-state).
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultMaxRetries is the number of retry attempts the transport
	// adapter makes for a single POST before giving up.
	DefaultMaxRetries = 3

	// DefaultRetryBackoff is the initial backoff between retries.
	DefaultRetryBackoff = 200 * time.Millisecond

	// DefaultMaxRetryBackoff caps the exponential backoff growth.
	DefaultMaxRetryBackoff = 5 * time.Second

	// DefaultMaxJSONSize is a size limit, in bytes, for a single encoded
	// event. The encoder does not consult it: events are encoded at full
	// length, with no clamping or truncation.
	DefaultMaxJSONSize = 64 * 1024

	// DefaultMaxResponseBodyBytes bounds how much of a collector response
	// body the transport reads before truncating.
	DefaultMaxResponseBodyBytes = 64 * 1024

	// DefaultSchemaMajorVersion and DefaultSchemaMinorVersion are the
	// compile-time commonEventHeader schema version baked into every
	// event header.
	DefaultSchemaMajorVersion = 1
	DefaultSchemaMinorVersion = 2
)
