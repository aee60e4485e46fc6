package eventmodel

// Heartbeat is the heartbeat domain payload (§3.3). A plain heartbeat
// carries no domain-specific fields object of its own — only the common
// header, with EventType forced to "Autonomous heartbeat" — but may
// optionally carry additional name/value pairs (the "Heartbeat-field"
// variant in the glossary).
type Heartbeat struct {
	AdditionalFields NameValuePairList
}

// NewHeartbeat builds a Heartbeat event. EventType is forced to
// "Autonomous heartbeat" since every heartbeat this library emits is
// self-generated, never forwarded from another source (§8 scenario S1).
func NewHeartbeat(ctx *Context, priority Priority) *Event {
	h := ctx.newHeader(DomainHeartbeat, "heartbeat", priority, 1, 0)
	h.EventType.Force("Autonomous heartbeat")
	return &Event{Header: h, Payload: &Heartbeat{}}
}

func (hb *Heartbeat) AddAdditionalField(name, value string) { hb.AdditionalFields.Push(name, value) }

// Report is the measurementsForVfReporting domain payload (§3.3): the
// minimal "Report" variant, a measurement interval plus free-form
// name/value pairs.
type Report struct {
	MeasurementInterval float64
	AdditionalFields    NameValuePairList
}

// NewReport builds a Report event.
func NewReport(ctx *Context, intervalSeconds float64, priority Priority) *Event {
	h := ctx.newHeader(DomainReport, "measurementsForVfReporting", priority, 1, 0)
	return &Event{
		Header:  h,
		Payload: &Report{MeasurementInterval: intervalSeconds},
	}
}

func (r *Report) AddAdditionalField(name, value string) { r.AdditionalFields.Push(name, value) }

// Other is the catch-all domain payload (§3.3): an ordered collection of
// name/value pairs standing in for an opaque JSON object, for telemetry
// that fits none of the other nine schemas.
type Other struct {
	Fields NameValuePairList
}

// NewOther builds an Other event.
func NewOther(ctx *Context, priority Priority) *Event {
	h := ctx.newHeader(DomainOther, "other", priority, 1, 0)
	return &Event{Header: h, Payload: &Other{}}
}

func (o *Other) AddField(name, value string) { o.Fields.Push(name, value) }

// Batch wraps an ordered list of already-constructed events for
// encoding as a single eventList JSON array (§3.3, §6.1). Batch itself
// is never assigned a sequence or header; it is a pure transport-time
// wrapper.
type Batch struct {
	Events []*Event
}

// NewBatch builds an empty Batch.
func NewBatch() *Batch { return &Batch{} }

// Add appends ev to the batch in call order.
func (b *Batch) Add(ev *Event) { b.Events = append(b.Events, ev) }

// Len reports how many events the batch currently holds.
func (b *Batch) Len() int { return len(b.Events) }
