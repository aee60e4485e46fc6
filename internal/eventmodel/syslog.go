package eventmodel

import "github.com/bc-dunia/govel/internal/logging"

// SyslogFacility is the RFC5424 syslog facility enum (§3.3 Syslog).
type SyslogFacility int

const (
	FacilityKernel SyslogFacility = iota
	FacilityUser
	FacilityMail
	FacilitySystem
	FacilitySecurity4
	FacilityInternal
	FacilityLinePrinter
	FacilityNetworkNews
	FacilityUUCP
	FacilityClockDaemon9
	FacilitySecurity10
	FacilityFTP
	FacilityNTP
	FacilityLogAudit
	FacilityLogAlert
	FacilityClockDaemon15
	FacilityLocal0
	FacilityLocal1
	FacilityLocal2
	FacilityLocal3
	FacilityLocal4
	FacilityLocal5
	FacilityLocal6
	FacilityLocal7
)

// Syslog is the syslog domain payload (§3.3). SourceType, Message, and
// Tag are mandatory; the rest follow set-once discipline via Option.
type Syslog struct {
	SyslogSourceType SourceType
	Message          string
	Tag              string

	Host             Option[string]
	Facility         Option[SyslogFacility]
	Proc             Option[string]
	ProcID           Option[int64]
	Version           Option[int64]
	StructuredData    Option[string]
	Severity         Option[Severity]

	AdditionalFields NameValuePairList
}

// NewSyslog builds a Syslog event with its mandatory fields set.
func NewSyslog(ctx *Context, sourceType SourceType, message, tag string, priority Priority) *Event {
	h := ctx.newHeader(DomainSyslog, "syslog", priority, 1, 0)
	return &Event{
		Header: h,
		Payload: &Syslog{
			SyslogSourceType: sourceType,
			Message:          message,
			Tag:              tag,
		},
	}
}

func (s *Syslog) SetHost(v string, logger logging.Logger) { s.Host.Set(v, "syslog.syslogHost", logger) }
func (s *Syslog) SetFacility(v SyslogFacility, logger logging.Logger) {
	s.Facility.Set(v, "syslog.syslogFacility", logger)
}
func (s *Syslog) SetProc(v string, logger logging.Logger) { s.Proc.Set(v, "syslog.syslogProc", logger) }
func (s *Syslog) SetProcID(v int64, logger logging.Logger) {
	s.ProcID.Set(v, "syslog.syslogProcId", logger)
}
func (s *Syslog) SetVersion(v int64, logger logging.Logger) {
	s.Version.Set(v, "syslog.syslogVer", logger)
}
func (s *Syslog) SetStructuredData(v string, logger logging.Logger) {
	s.StructuredData.Set(v, "syslog.syslogSData", logger)
}
func (s *Syslog) SetSeverity(v Severity, logger logging.Logger) {
	s.Severity.Set(v, "syslog.syslogSev", logger)
}

func (s *Syslog) AddAdditionalField(name, value string) { s.AdditionalFields.Push(name, value) }
