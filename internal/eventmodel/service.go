package eventmodel

import "github.com/bc-dunia/govel/internal/logging"

// ServiceEventsVendorVnfNameFields identifies the VNF instance a service
// event concerns (§3.3 Service).
type ServiceEventsVendorVnfNameFields struct {
	VendorName string
	VNFName    Option[string]
}

// Service is the serviceEvents domain payload (§3.3).
type Service struct {
	EventInstanceID string
	VendorVNFNameFields ServiceEventsVendorVnfNameFields

	Correlator         Option[string]
	CodecSelected      Option[string]
	CodecSelectedTranscoding Option[string]
	RTCPSourceReportList     Option[string]
	MidCallRTCPSourceReportList Option[string]
	EndOfCallVQMSummaries       Option[string]
	PhoneNumber                Option[string]

	AdditionalFields NameValuePairList
}

// NewService builds a Service event with its mandatory fields set.
func NewService(ctx *Context, eventInstanceID, vendorName string, priority Priority) *Event {
	h := ctx.newHeader(DomainService, "serviceEvents", priority, 3, 0)
	return &Event{
		Header: h,
		Payload: &Service{
			EventInstanceID: eventInstanceID,
			VendorVNFNameFields: ServiceEventsVendorVnfNameFields{
				VendorName: vendorName,
			},
		},
	}
}

func (s *Service) SetVNFName(v string, logger logging.Logger) {
	s.VendorVNFNameFields.VNFName.Set(v, "service.vNFName", logger)
}
func (s *Service) SetCorrelator(v string, logger logging.Logger) {
	s.Correlator.Set(v, "service.correlator", logger)
}
func (s *Service) SetCodecSelected(v string, logger logging.Logger) {
	s.CodecSelected.Set(v, "service.codecSelected", logger)
}
func (s *Service) SetCodecSelectedTranscoding(v string, logger logging.Logger) {
	s.CodecSelectedTranscoding.Set(v, "service.codecSelectedTranscoding", logger)
}
func (s *Service) SetRTCPSourceReportList(v string, logger logging.Logger) {
	s.RTCPSourceReportList.Set(v, "service.rtcpSourceReportList", logger)
}
func (s *Service) SetMidCallRTCPSourceReportList(v string, logger logging.Logger) {
	s.MidCallRTCPSourceReportList.Set(v, "service.midCallRtcpSourceReportList", logger)
}
func (s *Service) SetEndOfCallVQMSummaries(v string, logger logging.Logger) {
	s.EndOfCallVQMSummaries.Set(v, "service.endOfCallVqmSummaries", logger)
}
func (s *Service) SetPhoneNumber(v string, logger logging.Logger) {
	s.PhoneNumber.Set(v, "service.phoneNumber", logger)
}

func (s *Service) AddAdditionalField(name, value string) { s.AdditionalFields.Push(name, value) }
