package eventmodel

import "github.com/bc-dunia/govel/internal/logging"

// Option is the generic "maybe-set" wrapper used for every optional field
// in the event model (§3.2). It carries a typed value plus an is-set flag
// and enforces set-once
// discipline: once populated via Set, further calls are logged and
// ignored. Force bypasses that discipline and is reserved for
// initialization code that is itself responsible for single assignment.
type Option[T any] struct {
	isSet bool
	value T
}

// IsSet reports whether the option currently holds a value.
func (o *Option[T]) IsSet() bool {
	if o == nil {
		return false
	}
	return o.isSet
}

// Get returns the held value and whether it was set.
func (o *Option[T]) Get() (T, bool) {
	if o == nil {
		var zero T
		return zero, false
	}
	return o.value, o.isSet
}

// Set assigns v if the option is not already set. If it is, the set is
// logged and ignored, matching the library's set-once discipline for
// immutable event properties. label names the field for the log line.
func (o *Option[T]) Set(v T, label string, logger logging.Logger) {
	if o.isSet {
		if logger == nil {
			logger = logging.Noop()
		}
		logger.Warn("option already set, ignoring", "field", label)
		return
	}
	o.value = v
	o.isSet = true
}

// Force unconditionally assigns v, overriding any previous value. Used
// only by subsystems (factories, internal defaults) that guarantee
// single assignment by construction.
func (o *Option[T]) Force(v T) {
	o.value = v
	o.isSet = true
}

// Reset clears the option back to its zero, not-set state. Go's garbage
// collector makes an explicit "free" unnecessary; Reset exists so call
// sites mirroring the source library's free/reinitialize pattern have a
// direct, idempotent analogue.
func (o *Option[T]) Reset() {
	var zero T
	o.value = zero
	o.isSet = false
}
