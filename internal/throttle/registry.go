// Package throttle implements the throttle registry (C4): per-domain
// specs naming which fields and which named-value-pair container items
// to suppress, plus the process-wide measurement interval, both
// settable by the collector via the inbound command channel (§4.4).
//
// Grounded on evel_throttle.h/.c from the original library: a spec per
// domain holding a set of suppressed field names and a map from
// container name to a set of suppressed item names. This
// implementation swaps the original's fixed-size C arrays for Go's
// built-in map/set idioms, and replaces ad hoc locking with a single
// sync.RWMutex guarding whole-registry reads and whole-spec
// replacements, matching the "apply replaces the previous spec for a
// domain atomically" semantics §4.4 requires.
package throttle

import (
	"sort"
	"sync"

	"github.com/bc-dunia/govel/internal/eventmodel"
)

// Spec is one domain's throttle specification: the set of field names
// to omit, and for each named container (e.g. "alarmAdditionalInformation")
// the set of item names to omit from it.
type Spec struct {
	SuppressedFields map[string]struct{}
	SuppressedPairs  map[string]map[string]struct{}
}

// NewSpec returns an empty Spec ready for population.
func NewSpec() *Spec {
	return &Spec{
		SuppressedFields: make(map[string]struct{}),
		SuppressedPairs:  make(map[string]map[string]struct{}),
	}
}

// SuppressField adds name to the set of suppressed field names.
func (s *Spec) SuppressField(name string) {
	s.SuppressedFields[name] = struct{}{}
}

// SuppressNVPair adds name to the suppressed-item set for container.
func (s *Spec) SuppressNVPair(container, name string) {
	set, ok := s.SuppressedPairs[container]
	if !ok {
		set = make(map[string]struct{})
		s.SuppressedPairs[container] = set
	}
	set[name] = struct{}{}
}

// Registry holds one Spec per throttleable domain plus the process-wide
// measurement interval, guarded by a single mutex (§4.4).
type Registry struct {
	mu                  sync.RWMutex
	specs               map[eventmodel.Domain]*Spec
	measurementInterval int64 // seconds; -1 means unknown/unset
}

// NewRegistry returns an initialized, empty Registry (evel_throttle_initialize).
func NewRegistry() *Registry {
	return &Registry{
		specs:               make(map[eventmodel.Domain]*Spec),
		measurementInterval: -1,
	}
}

// Terminate clears every spec and resets the measurement interval,
// mirroring evel_throttle_terminate. The emptied Registry left behind
// remains usable.
func (r *Registry) Terminate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs = make(map[eventmodel.Domain]*Spec)
	r.measurementInterval = -1
}

// Apply replaces the spec for domain wholesale; a nil spec clears it.
// Replacement, not merge, matches the collector's
// throttlingSpecification command semantics (§4.7).
func (r *Registry) Apply(domain eventmodel.Domain, spec *Spec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if spec == nil {
		delete(r.specs, domain)
		return
	}
	r.specs[domain] = spec
}

// Clear removes the spec for domain, if any.
func (r *Registry) Clear(domain eventmodel.Domain) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.specs, domain)
}

// Get returns a copy-by-reference of the spec for domain, or nil if
// none is set. Callers must not mutate the returned Spec.
func (r *Registry) Get(domain eventmodel.Domain) *Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.specs[domain]
}

// SuppressField implements velencode.Suppressor: whether field_name
// should be omitted for domain (evel_throttle_suppress_field).
func (r *Registry) SuppressField(domain eventmodel.Domain, fieldName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[domain]
	if !ok {
		return false
	}
	_, suppressed := spec.SuppressedFields[fieldName]
	return suppressed
}

// SuppressNVPair implements velencode.Suppressor: whether the item
// named name within container should be omitted for domain
// (evel_throttle_suppress_nv_pair).
func (r *Registry) SuppressNVPair(domain eventmodel.Domain, container, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[domain]
	if !ok {
		return false
	}
	set, ok := spec.SuppressedPairs[container]
	if !ok {
		return false
	}
	_, suppressed := set[name]
	return suppressed
}

// SetMeasurementInterval records the collector-directed reporting
// interval in seconds (§4.4, §4.7 measurementIntervalChange).
func (r *Registry) SetMeasurementInterval(seconds int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.measurementInterval = seconds
}

// MeasurementInterval returns the current interval and whether one has
// been set by the collector.
func (r *Registry) MeasurementInterval() (int64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.measurementInterval < 0 {
		return 0, false
	}
	return r.measurementInterval, true
}

// Snapshot describes one domain's current throttle state, used to build
// a provideThrottlingState reply (§4.7).
type Snapshot struct {
	Domain           eventmodel.Domain
	SuppressedFields []string
	SuppressedPairs  map[string][]string
}

// State returns a deterministic snapshot of every domain that currently
// has a spec applied, in ThrottleDomains order.
func (r *Registry) State() []Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Snapshot
	for _, domain := range eventmodel.ThrottleDomains {
		spec, ok := r.specs[domain]
		if !ok {
			continue
		}
		snap := Snapshot{
			Domain:          domain,
			SuppressedPairs: make(map[string][]string, len(spec.SuppressedPairs)),
		}
		for name := range spec.SuppressedFields {
			snap.SuppressedFields = append(snap.SuppressedFields, name)
		}
		sort.Strings(snap.SuppressedFields)
		for container, names := range spec.SuppressedPairs {
			list := make([]string, 0, len(names))
			for name := range names {
				list = append(list, name)
			}
			sort.Strings(list)
			snap.SuppressedPairs[container] = list
		}
		out = append(out, snap)
	}
	return out
}
