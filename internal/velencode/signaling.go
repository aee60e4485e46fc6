package velencode

import "github.com/bc-dunia/govel/internal/eventmodel"

// encodeSignalingFields writes signalingFields: mandatory identifiers,
// the vendor/module/VNF-name sub-object, then optional SIP summaries
// and the correlator.
func encodeSignalingFields(b *Buffer, ev *eventmodel.Event) {
	s := ev.Payload.(*eventmodel.Signaling)

	b.OpenNamedObject("signalingFields")
	b.KVString("eventInstanceIdentifier", s.EventInstanceID)

	b.kvComma()
	b.writeKey("vendorNfNameFields")
	b.buf.WriteString(": {")
	b.KVString("vendorName", s.VendorNFNameFields.VendorName)
	b.KVOptString("vnfModuleName", &s.VendorNFNameFields.ModuleName)
	b.KVOptString("vfName", &s.VendorNFNameFields.VFName)
	b.buf.WriteByte('}')

	b.KVString("localIpAddress", s.LocalIPAddress)
	b.KVString("localPort", s.LocalPort)
	b.KVString("remoteIpAddress", s.RemoteIPAddress)
	b.KVString("remotePort", s.RemotePort)
	b.KVVersion("signalingFieldsVersion", 1, 1)
	b.KVOptString("compressedSip", &s.CompressedSIP)
	b.KVOptString("summarySip", &s.SummarySIP)
	b.KVOptString("correlator", &s.Correlator)
	b.WriteNameValuePairList("additionalInformation", s.AdditionalInfo.Items())
	b.CloseObject()
}
