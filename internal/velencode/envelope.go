package velencode

import (
	"fmt"

	"github.com/bc-dunia/govel/internal/eventmodel"
)

// domainEncoder writes the "<domain>Fields" object for one event's
// payload into b. Header encoding is handled separately by EncodeHeader
// since it's common to every domain.
type domainEncoder func(b *Buffer, ev *eventmodel.Event)

var domainEncoders = map[eventmodel.Domain]domainEncoder{
	eventmodel.DomainFault:       encodeFaultFields,
	eventmodel.DomainMeasurement: encodeMeasurementFields,
	eventmodel.DomainMobileFlow:  encodeMobileFlowFields,
	eventmodel.DomainService:     encodeServiceFields,
	eventmodel.DomainSignaling:   encodeSignalingFields,
	eventmodel.DomainStateChange: encodeStateChangeFields,
	eventmodel.DomainSyslog:      encodeSyslogFields,
	eventmodel.DomainReport:      encodeReportFields,
	eventmodel.DomainOther:       encodeOtherFields,
	eventmodel.DomainHeartbeat:   encodeHeartbeatFields,
}

// Encode renders ev as the collector's single-event envelope:
// {"event": {"commonEventHeader": {...}, "<domain>Fields": {...}}}.
// ev.Header.Domain must be one of the ten wire-bearing domains; Internal
// and Batch events are never passed to Encode (§3.3).
func Encode(ev *eventmodel.Event, suppressor Suppressor) ([]byte, error) {
	b := NewBuffer(ev.Header.Domain, suppressor)
	b.OpenObject()
	b.OpenNamedObject("event")
	EncodeHeader(b, &ev.Header)

	enc, ok := domainEncoders[ev.Header.Domain]
	if !ok {
		return nil, fmt.Errorf("velencode: no encoder registered for domain %q", ev.Header.Domain)
	}
	enc(b, ev)

	b.CloseObject() // event
	b.CloseObject() // outer
	return b.Bytes(), nil
}

// EncodeBatch renders a Batch as {"eventList": [<envelope>, ...]}, each
// element built with Encode against the same suppressor (§3.3, §6.1).
func EncodeBatch(batch *eventmodel.Batch, suppressor Suppressor) ([]byte, error) {
	out := NewBuffer(eventmodel.DomainBatch, suppressor)
	out.OpenObject()
	out.OpenNamedList("eventList")
	for i, ev := range batch.Events {
		raw, err := Encode(ev, suppressor)
		if err != nil {
			return nil, fmt.Errorf("velencode: batch item %d: %w", i, err)
		}
		out.ListItem(string(raw))
	}
	out.CloseList()
	out.CloseObject()
	return out.Bytes(), nil
}
