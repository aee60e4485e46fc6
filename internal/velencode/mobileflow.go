package velencode

import (
	"sort"

	"github.com/bc-dunia/govel/internal/eventmodel"
)

func encodeGTPPerFlowMetrics(b *Buffer, m eventmodel.GTPPerFlowMetrics) {
	b.buf.WriteByte('{')
	b.KVDouble("avgBitErrorRate", m.AvgBitErrorRate)
	b.KVDouble("avgPacketDelayVariation", m.AvgPacketDelayVariation)
	b.KVDouble("avgPacketLatency", m.AvgPacketLatency)
	b.KVDouble("avgReceiveThroughput", m.AvgReceiveThroughput)
	b.KVDouble("avgTransmitThroughput", m.AvgTransmitThroughput)
	b.KVInt("flowActivationEpoch", m.FlowActivationEpoch)
	b.KVInt("flowActivationMicrosec", m.FlowActivationMicrosec)
	b.KVString("flowDeactivationTime", m.FlowDeactivationTime)
	b.KVInt("flowDeactivationEpoch", m.FlowDeactivationEpoch)
	b.KVInt("flowDeactivationMicrosec", m.FlowDeactivationMicrosec)
	b.KVString("flowStatus", m.FlowStatus)
	b.KVDouble("maxPacketDelayVariation", m.MaxPacketDelayVariation)
	b.KVInt("numActivationFailures", m.NumActivationFailures)
	b.KVInt("numBitErrors", m.NumBitErrors)
	b.KVInt("numBytesReceived", m.NumBytesReceived)
	b.KVInt("numBytesTransmitted", m.NumBytesTransmitted)
	b.KVInt("numDroppedPackets", m.NumDroppedPackets)
	b.KVInt("numL7BytesReceived", m.NumL7BytesReceived)
	b.KVInt("numL7BytesTransmitted", m.NumL7BytesTransmitted)
	b.KVInt("numLostPackets", m.NumLostPackets)
	b.KVInt("numOutOfOrderPackets", m.NumOutOfOrderPackets)
	b.KVInt("numPacketErrors", m.NumPacketErrors)
	b.KVInt("numPacketsReceivedExclRetrans", m.NumPacketsReceivedExclRetrans)
	b.KVInt("numPacketsReceivedInclRetrans", m.NumPacketsReceivedInclRetrans)
	b.KVInt("numPacketsTransmittedInclRetrans", m.NumPacketsTransmittedInclRetrans)
	b.KVInt("numRetries", m.NumRetries)
	b.KVInt("numTimeouts", m.NumTimeouts)
	b.KVInt("numTunneledL7BytesReceived", m.NumTunneledL7BytesReceived)
	b.KVInt("roundTripTime", m.RoundTripTime)
	b.KVInt("timeToFirstByte", m.TimeToFirstByte)

	writeHistogram(b, "tcpFlagCountList", m.TCPFlagCount, "tcpFlagName", "tcpFlagCount")
	writeHistogram(b, "mobileQciCosCountList", m.QCICOSCount, "mobileQciCosType", "mobileQciCosCount")
	b.buf.WriteByte('}')
}

// writeHistogram writes a name/count histogram as an array of objects,
// in sorted-by-name order for reproducible output across runs.
func writeHistogram(b *Buffer, key string, counts map[string]int64, nameKey, countKey string) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	b.buf.WriteString(", ")
	b.writeKey(key)
	b.buf.WriteString(": [")
	for i, name := range names {
		if i > 0 {
			b.buf.WriteString(", ")
		}
		b.buf.WriteByte('{')
		b.KVString(nameKey, name)
		b.KVInt(countKey, counts[name])
		b.buf.WriteByte('}')
	}
	b.buf.WriteByte(']')
}

// encodeMobileFlowFields writes mobileFlowFields: mandatory fields,
// the nested gtpPerFlowMetrics object, then the ~20 optional
// identifiers, then additionalInfo and the fixed schema version.
func encodeMobileFlowFields(b *Buffer, ev *eventmodel.Event) {
	m := ev.Payload.(*eventmodel.MobileFlow)

	b.OpenNamedObject("mobileFlowFields")
	b.KVString("flowDirection", m.FlowDirection)

	b.kvComma()
	b.writeKey("gtpPerFlowMetrics")
	b.buf.WriteString(": ")
	encodeGTPPerFlowMetrics(b, m.GTPPerFlowMetrics)

	b.KVString("ipProtocolType", m.IPProtocolType)
	b.KVString("ipVersion", m.IPVersion)
	b.KVString("otherEndpointIpAddress", m.OtherEndpointIPAddress)
	b.KVInt("otherEndpointPort", m.OtherEndpointPort)
	b.KVString("reportingEndpointIpAddress", m.ReportingEndpointIPAddress)
	b.KVInt("reportingEndpointPort", m.ReportingEndpointPort)

	b.KVOptString("applicationType", &m.ApplicationType)
	b.KVOptString("appProtocolType", &m.AppProtocolType)
	b.KVOptString("appProtocolVersion", &m.AppProtocolVersion)
	b.KVOptString("cid", &m.CID)
	b.KVOptString("connectionType", &m.ConnectionType)
	b.KVOptString("ecgi", &m.ECGI)
	b.KVOptString("gtpProtocolType", &m.GTPProtocolType)
	b.KVOptString("gtpVersion", &m.GTPVersion)
	b.KVOptString("httpHeader", &m.HTTPHeader)
	b.KVOptString("imei", &m.IMEI)
	b.KVOptString("imsi", &m.IMSI)
	b.KVOptString("lac", &m.LAC)
	b.KVOptString("mcc", &m.MCC)
	b.KVOptString("mnc", &m.MNC)
	b.KVOptString("msisdn", &m.MSISDN)
	b.KVOptString("otherFunctionalRole", &m.OtherFunctionalRole)
	b.KVOptString("rac", &m.RAC)
	b.KVOptString("radioAccessTechnology", &m.RadioAccessTechnology)
	b.KVOptString("sac", &m.SAC)
	b.KVOptInt("samplingAlgorithm", &m.SamplingAlgorithm)
	b.KVOptString("tac", &m.TAC)
	b.KVOptString("tunnelId", &m.TunnelID)
	b.KVOptString("vlanId", &m.VLANID)

	b.WriteNameValuePairList("additionalFields", m.AdditionalInfo.Items())
	b.KVVersion("mobileFlowFieldsVersion", 1, 1)
	b.CloseObject()
}
