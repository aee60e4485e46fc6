package eventmodel

import "github.com/bc-dunia/govel/internal/logging"

// VendorNFNameFields identifies the vendor/module/VNF triple a signaling
// event concerns (§3.3 Signaling).
type VendorNFNameFields struct {
	VendorName string
	ModuleName Option[string]
	VFName     Option[string]
}

// Signaling is the signaling domain payload (§3.3).
type Signaling struct {
	EventInstanceID     string
	VendorNFNameFields  VendorNFNameFields
	LocalIPAddress      string
	LocalPort           string
	RemoteIPAddress     string
	RemotePort          string
	CompressedSIP       Option[string]
	SummarySIP          Option[string]
	Correlator          Option[string]

	AdditionalInfo NameValuePairList
}

// NewSignaling builds a Signaling event with its mandatory fields set.
func NewSignaling(ctx *Context, eventInstanceID, vendorName, localIP, localPort, remoteIP, remotePort string, priority Priority) *Event {
	h := ctx.newHeader(DomainSignaling, "signaling", priority, 3, 0)
	return &Event{
		Header: h,
		Payload: &Signaling{
			EventInstanceID: eventInstanceID,
			VendorNFNameFields: VendorNFNameFields{
				VendorName: vendorName,
			},
			LocalIPAddress:  localIP,
			LocalPort:       localPort,
			RemoteIPAddress: remoteIP,
			RemotePort:      remotePort,
		},
	}
}

func (s *Signaling) SetModuleName(v string, logger logging.Logger) {
	s.VendorNFNameFields.ModuleName.Set(v, "signaling.vNFModuleName", logger)
}
func (s *Signaling) SetVFName(v string, logger logging.Logger) {
	s.VendorNFNameFields.VFName.Set(v, "signaling.vfName", logger)
}
func (s *Signaling) SetCompressedSIP(v string, logger logging.Logger) {
	s.CompressedSIP.Set(v, "signaling.compressedSip", logger)
}
func (s *Signaling) SetSummarySIP(v string, logger logging.Logger) {
	s.SummarySIP.Set(v, "signaling.summarySip", logger)
}
func (s *Signaling) SetCorrelator(v string, logger logging.Logger) {
	s.Correlator.Set(v, "signaling.correlator", logger)
}

func (s *Signaling) AddAdditionalInfo(name, value string) { s.AdditionalInfo.Push(name, value) }
