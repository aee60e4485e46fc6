// Package eventmodel holds the event model shared across govel: option
// primitives (C1), the common header, and the per-domain payload types
// (C2). It has no dependency on the encoder, throttle registry, ring
// buffer, or transport, so it can sit underneath all of them without
// creating an import cycle between the public vel facade and the
// internal pipeline packages that operate on these types.
package eventmodel

// NameValuePair is the ordered (name, value) unit used by every
// "additional info" collection across domains (§3.3, §8 property 4:
// round-trip order must be preserved).
type NameValuePair struct {
	Name  string
	Value string
}

// NameValuePairList is an insertion-ordered list of NameValuePair.
// Ordering is load-bearing: the wire output must reproduce insertion
// order exactly.
type NameValuePairList struct {
	items []NameValuePair
}

// Push appends name/value to the list, preserving insertion order.
func (l *NameValuePairList) Push(name, value string) {
	l.items = append(l.items, NameValuePair{Name: name, Value: value})
}

// Items returns the list contents in insertion order. Callers must treat
// the returned slice as read-only.
func (l *NameValuePairList) Items() []NameValuePair {
	return l.items
}

// Len reports the number of pairs currently held.
func (l *NameValuePairList) Len() int { return len(l.items) }

// NamedValuesGroup is one named group within a two-level additional-
// measurements collection (§4.2): an ordered list of named groups, each
// containing an ordered list of (name, value) pairs.
type NamedValuesGroup struct {
	Name   string
	Values NameValuePairList
}

// NamedValuesGroupList is an ordered sequence of NamedValuesGroup.
// Duplicate group names are never merged automatically — callers must
// search by name (FindOrAdd) before inserting, matching the source
// library's behavior (§4.2).
type NamedValuesGroupList struct {
	groups []*NamedValuesGroup
}

// FindOrAdd returns the existing group named name, appending a new,
// empty one if none exists yet.
func (l *NamedValuesGroupList) FindOrAdd(name string) *NamedValuesGroup {
	for _, g := range l.groups {
		if g.Name == name {
			return g
		}
	}
	g := &NamedValuesGroup{Name: name}
	l.groups = append(l.groups, g)
	return g
}

// Groups returns the groups in insertion order.
func (l *NamedValuesGroupList) Groups() []*NamedValuesGroup { return l.groups }

// Event is the tagged wrapper every domain payload is carried in once it
// leaves a factory. Dispatch (encoding, ring-buffer transport) switches
// on Domain rather than on an interface method, keeping the payload
// types themselves plain data (§9 "Domain dispatch" design note).
type Event struct {
	Header  Header
	Payload any

	// command is only populated for DomainInternal sentinel events.
	Command InternalCommand
}

// InternalCommand identifies the pseudo-event used to route control
// messages to the consumer (§3.3 "Internal").
type InternalCommand int

const (
	// CommandNone marks an Event that is not an internal control event.
	CommandNone InternalCommand = iota
	// CommandTerminate asks the consumer to drain and stop.
	CommandTerminate
)

// NewInternalEvent builds the sentinel event used to wake and terminate
// the consumer (§4.6, glossary "Sentinel event"). It is never emitted on
// the wire.
func NewInternalEvent(ctx *Context, cmd InternalCommand) *Event {
	h := ctx.newHeader(DomainInternal, "internal", PriorityNormal, 1, 0)
	return &Event{Header: h, Command: cmd}
}
