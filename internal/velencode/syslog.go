package velencode

import "github.com/bc-dunia/govel/internal/eventmodel"

// encodeSyslogFields writes syslogFields: mandatory source type,
// message, and tag, then the optional host/facility/process/version/
// structured-data/severity fields, additional fields, and the fixed
// schema version last.
func encodeSyslogFields(b *Buffer, ev *eventmodel.Event) {
	s := ev.Payload.(*eventmodel.Syslog)

	b.OpenNamedObject("syslogFields")
	b.KVString("eventSourceType", string(s.SyslogSourceType))
	b.KVString("syslogMsg", s.Message)
	b.KVString("syslogTag", s.Tag)

	b.KVOptString("syslogHost", &s.Host)
	if facility, ok := s.Facility.Get(); ok && !b.suppressField("syslogFacility") {
		b.KVInt("syslogFacility", int64(facility))
	}
	b.KVOptString("syslogProc", &s.Proc)
	b.KVOptInt("syslogProcId", &s.ProcID)
	b.KVOptInt("syslogVer", &s.Version)
	b.KVOptString("syslogSData", &s.StructuredData)
	if sev, ok := s.Severity.Get(); ok && !b.suppressField("syslogSev") {
		b.KVString("syslogSev", string(sev))
	}

	b.WriteNameValuePairList("additionalFields", s.AdditionalFields.Items())
	b.KVVersion("syslogFieldsVersion", 1, 1)
	b.CloseObject()
}
