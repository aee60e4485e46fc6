package velencode

import "github.com/bc-dunia/govel/internal/eventmodel"

// encodeHeartbeatFields writes heartbeatFields only when the event
// carries additional name/value pairs; a plain heartbeat has no
// domain-fields object at all (§8 scenario S1: the expected envelope
// contains only commonEventHeader).
func encodeHeartbeatFields(b *Buffer, ev *eventmodel.Event) {
	hb, _ := ev.Payload.(*eventmodel.Heartbeat)
	if hb == nil || hb.AdditionalFields.Len() == 0 {
		return
	}
	b.OpenNamedObject("heartbeatFields")
	b.WriteNameValuePairList("additionalFields", hb.AdditionalFields.Items())
	b.CloseObject()
}

// encodeReportFields writes measurementsForVfReportingFields: the
// mandatory interval, optional additional fields, then the fixed
// schema version last.
func encodeReportFields(b *Buffer, ev *eventmodel.Event) {
	r := ev.Payload.(*eventmodel.Report)
	b.OpenNamedObject("measurementsForVfReportingFields")
	b.KVDouble("measurementInterval", r.MeasurementInterval)
	b.WriteNameValuePairList("additionalFields", r.AdditionalFields.Items())
	b.KVVersion("measurementFieldsVersion", 1, 1)
	b.CloseObject()
}

// encodeOtherFields writes otherFields only when the event carries at
// least one field; Other is the catch-all domain for telemetry that
// fits none of the other nine schemas (§3.3).
func encodeOtherFields(b *Buffer, ev *eventmodel.Event) {
	o := ev.Payload.(*eventmodel.Other)
	if o.Fields.Len() == 0 {
		return
	}
	b.OpenNamedObject("otherFields")
	b.WriteNameValuePairList("nameValuePairs", o.Fields.Items())
	b.CloseObject()
}
