package eventmodel

import "github.com/bc-dunia/govel/internal/logging"

// GTPPerFlowMetrics holds the per-flow GTP counters mandatory on every
// MobileFlow event (§3.3). Fields mirror the collector schema's flat
// gtpPerFlowMetrics object.
type GTPPerFlowMetrics struct {
	AvgBitErrorRate              float64
	AvgPacketDelayVariation      float64
	AvgPacketLatency             float64
	AvgReceiveThroughput         float64
	AvgTransmitThroughput        float64
	FlowActivationEpoch          int64
	FlowActivationMicrosec       int64
	FlowDeactivationEpoch        int64
	FlowDeactivationMicrosec     int64
	FlowDeactivationTime         string
	FlowStatus                   string
	MaxPacketDelayVariation      float64
	NumActivationFailures        int64
	NumBitErrors                 int64
	NumBytesReceived              int64
	NumBytesTransmitted           int64
	NumDroppedPackets             int64
	NumL7BytesReceived            int64
	NumL7BytesTransmitted         int64
	NumLostPackets                int64
	NumOutOfOrderPackets          int64
	NumPacketErrors               int64
	NumPacketsReceivedExclRetrans int64
	NumPacketsReceivedInclRetrans int64
	NumPacketsTransmittedInclRetrans int64
	NumRetries                    int64
	NumTimeouts                   int64
	NumTunneledL7BytesReceived    int64
	RoundTripTime                 int64
	TimeToFirstByte               int64

	// TCPFlagCount and QCICOSCount are name/count histograms keyed by
	// flag or class-of-service name (§3.3: "TCP-flag/QCI-class
	// histograms").
	TCPFlagCount map[string]int64
	QCICOSCount  map[string]int64
}

// MobileFlow is the mobileFlow domain payload (§3.3).
type MobileFlow struct {
	FlowDirection    string
	GTPPerFlowMetrics GTPPerFlowMetrics
	IPProtocolType   string
	IPVersion        string
	OtherEndpointIPAddress string
	OtherEndpointPort      int64
	ReportingEndpointIPAddress string
	ReportingEndpointPort     int64

	ApplicationType        Option[string]
	AppProtocolType        Option[string]
	AppProtocolVersion     Option[string]
	CID                    Option[string]
	ConnectionType         Option[string]
	ECGI                   Option[string]
	GTPProtocolType        Option[string]
	GTPVersion             Option[string]
	HTTPHeader             Option[string]
	IMEI                   Option[string]
	IMSI                   Option[string]
	LAC                    Option[string]
	MCC                    Option[string]
	MNC                    Option[string]
	MSISDN                 Option[string]
	OtherFunctionalRole    Option[string]
	RAC                    Option[string]
	RadioAccessTechnology  Option[string]
	SAC                    Option[string]
	SamplingAlgorithm      Option[int64]
	TAC                    Option[string]
	TunnelID               Option[string]
	VLANID                 Option[string]

	AdditionalInfo NameValuePairList
}

// NewMobileFlow builds a MobileFlow event with its mandatory fields set.
func NewMobileFlow(ctx *Context, flowDirection, ipProtocolType, ipVersion string, metrics GTPPerFlowMetrics, reportingIP string, reportingPort int64, otherIP string, otherPort int64, priority Priority) *Event {
	h := ctx.newHeader(DomainMobileFlow, "mobileFlow", priority, 1, 0)
	return &Event{
		Header: h,
		Payload: &MobileFlow{
			FlowDirection:              flowDirection,
			GTPPerFlowMetrics:          metrics,
			IPProtocolType:             ipProtocolType,
			IPVersion:                  ipVersion,
			ReportingEndpointIPAddress: reportingIP,
			ReportingEndpointPort:      reportingPort,
			OtherEndpointIPAddress:     otherIP,
			OtherEndpointPort:          otherPort,
		},
	}
}

func (m *MobileFlow) SetApplicationType(v string, logger logging.Logger) {
	m.ApplicationType.Set(v, "mobileFlow.applicationType", logger)
}
func (m *MobileFlow) SetAppProtocolType(v string, logger logging.Logger) {
	m.AppProtocolType.Set(v, "mobileFlow.appProtocolType", logger)
}
func (m *MobileFlow) SetAppProtocolVersion(v string, logger logging.Logger) {
	m.AppProtocolVersion.Set(v, "mobileFlow.appProtocolVersion", logger)
}
func (m *MobileFlow) SetCID(v string, logger logging.Logger) { m.CID.Set(v, "mobileFlow.cid", logger) }
func (m *MobileFlow) SetConnectionType(v string, logger logging.Logger) {
	m.ConnectionType.Set(v, "mobileFlow.connectionType", logger)
}
func (m *MobileFlow) SetECGI(v string, logger logging.Logger) { m.ECGI.Set(v, "mobileFlow.ecgi", logger) }
func (m *MobileFlow) SetGTPProtocolType(v string, logger logging.Logger) {
	m.GTPProtocolType.Set(v, "mobileFlow.gtpProtocolType", logger)
}
func (m *MobileFlow) SetGTPVersion(v string, logger logging.Logger) {
	m.GTPVersion.Set(v, "mobileFlow.gtpVersion", logger)
}
func (m *MobileFlow) SetHTTPHeader(v string, logger logging.Logger) {
	m.HTTPHeader.Set(v, "mobileFlow.httpHeader", logger)
}
func (m *MobileFlow) SetIMEI(v string, logger logging.Logger) { m.IMEI.Set(v, "mobileFlow.imei", logger) }
func (m *MobileFlow) SetIMSI(v string, logger logging.Logger) { m.IMSI.Set(v, "mobileFlow.imsi", logger) }
func (m *MobileFlow) SetLAC(v string, logger logging.Logger)  { m.LAC.Set(v, "mobileFlow.lac", logger) }
func (m *MobileFlow) SetMCC(v string, logger logging.Logger)  { m.MCC.Set(v, "mobileFlow.mcc", logger) }
func (m *MobileFlow) SetMNC(v string, logger logging.Logger)  { m.MNC.Set(v, "mobileFlow.mnc", logger) }
func (m *MobileFlow) SetMSISDN(v string, logger logging.Logger) {
	m.MSISDN.Set(v, "mobileFlow.msisdn", logger)
}
func (m *MobileFlow) SetOtherFunctionalRole(v string, logger logging.Logger) {
	m.OtherFunctionalRole.Set(v, "mobileFlow.otherFunctionalRole", logger)
}
func (m *MobileFlow) SetRAC(v string, logger logging.Logger) { m.RAC.Set(v, "mobileFlow.rac", logger) }
func (m *MobileFlow) SetRadioAccessTechnology(v string, logger logging.Logger) {
	m.RadioAccessTechnology.Set(v, "mobileFlow.radioAccessTechnology", logger)
}
func (m *MobileFlow) SetSAC(v string, logger logging.Logger) { m.SAC.Set(v, "mobileFlow.sac", logger) }
func (m *MobileFlow) SetSamplingAlgorithm(v int64, logger logging.Logger) {
	m.SamplingAlgorithm.Set(v, "mobileFlow.samplingAlgorithm", logger)
}
func (m *MobileFlow) SetTAC(v string, logger logging.Logger) { m.TAC.Set(v, "mobileFlow.tac", logger) }
func (m *MobileFlow) SetTunnelID(v string, logger logging.Logger) {
	m.TunnelID.Set(v, "mobileFlow.tunnelId", logger)
}
func (m *MobileFlow) SetVLANID(v string, logger logging.Logger) {
	m.VLANID.Set(v, "mobileFlow.vlanId", logger)
}

func (m *MobileFlow) AddAdditionalInfo(name, value string) { m.AdditionalInfo.Push(name, value) }
