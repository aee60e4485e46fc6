package vel

import "errors"

// Sentinel errors surfaced to producers (§7 "Propagation policy: only
// queue-full and lifecycle errors reach the producer; all others are
// reported via the logger and swallowed").
var (
	// ErrQueueFull is returned by PostEvent when the ring buffer has no
	// free slot. The caller retains ownership of the event (§3.3
	// "Ownership", §4.6 "post_event... on failure returns a queue-full
	// error and the caller retains ownership").
	ErrQueueFull = errors.New("vel: ring buffer full")

	// ErrNotInitialized names the "client not initialized" condition. No
	// Client method currently returns it: every Client is built by
	// Initialize, which starts its consumer.
	ErrNotInitialized = errors.New("vel: client not initialized")

	// ErrTerminating is returned by PostEvent once Terminate has been
	// called (§5 "Producers that attempt to post during
	// request_terminate receive a shutdown error and must free").
	ErrTerminating = errors.New("vel: client is terminating")

	// ErrAlreadyTerminating is returned by every call to Terminate after
	// the first, whether the first is still in progress or has finished.
	ErrAlreadyTerminating = errors.New("vel: terminate already in progress")
)
