package velencode

import "github.com/bc-dunia/govel/internal/eventmodel"

// encodeServiceFields writes serviceEventsFields: the mandatory event
// instance id and vendor/VNF-name sub-object, the fixed schema version,
// then the optional correlator, codec/RTCP/VQM strings, and additional
// fields.
func encodeServiceFields(b *Buffer, ev *eventmodel.Event) {
	s := ev.Payload.(*eventmodel.Service)

	b.OpenNamedObject("serviceEventsFields")
	b.KVString("eventInstanceIdentifier", s.EventInstanceID)

	b.kvComma()
	b.writeKey("vendorVnfNameFields")
	b.buf.WriteString(": {")
	b.KVString("vendorName", s.VendorVNFNameFields.VendorName)
	b.KVOptString("vnfName", &s.VendorVNFNameFields.VNFName)
	b.buf.WriteByte('}')

	b.KVVersion("serviceEventsFieldsVersion", 1, 1)
	b.KVOptString("correlator", &s.Correlator)
	b.KVOptString("codecSelected", &s.CodecSelected)
	b.KVOptString("codecSelectedTranscoding", &s.CodecSelectedTranscoding)
	b.KVOptString("rtcpSourceReportList", &s.RTCPSourceReportList)
	b.KVOptString("midCallRtcpSourceReportList", &s.MidCallRTCPSourceReportList)
	b.KVOptString("endOfCallVqmSummaries", &s.EndOfCallVQMSummaries)
	b.KVOptString("phoneNumber", &s.PhoneNumber)
	b.WriteNameValuePairList("additionalFields", s.AdditionalFields.Items())
	b.CloseObject()
}
