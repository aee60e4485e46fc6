package velencode

import "github.com/bc-dunia/govel/internal/eventmodel"

// EncodeHeader writes the commonEventHeader object, mandatory keys
// first in the exact order the collector schema requires, then the
// three optionals (§6.1).
func EncodeHeader(b *Buffer, h *eventmodel.Header) {
	b.OpenNamedObject("commonEventHeader")

	b.KVString("domain", h.Domain.WireName())
	b.KVString("eventId", h.EventID)
	b.KVString("functionalRole", h.FunctionalRole)
	b.KVInt("lastEpochMicrosec", h.LastEpochMicrosec)
	b.KVString("priority", string(h.Priority))
	b.KVString("reportingEntityName", h.ReportingEntityName)
	b.KVInt("sequence", h.Sequence)
	b.KVString("sourceName", h.SourceName)
	b.KVInt("startEpochMicrosec", h.StartEpochMicrosec)
	b.KVVersion("version", h.MajorVersion, h.MinorVersion)

	b.KVOptString("eventType", &h.EventType)
	b.KVOptString("reportingEntityId", &h.ReportingEntityID)
	b.KVOptString("sourceId", &h.SourceID)

	b.CloseObject()
}
