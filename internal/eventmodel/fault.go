package eventmodel

import "github.com/bc-dunia/govel/internal/logging"

// Severity is the fault severity enum (§3.3 Fault).
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityMajor    Severity = "MAJOR"
	SeverityMinor    Severity = "MINOR"
	SeverityWarning  Severity = "WARNING"
	SeverityNormal   Severity = "NORMAL"
)

// VFStatus is the virtual-function status enum (§3.3 Fault).
type VFStatus string

const (
	VFStatusActive          VFStatus = "Active"
	VFStatusIdle            VFStatus = "Idle"
	VFStatusPrepTerminate   VFStatus = "Preparing to terminate"
	VFStatusReadyTerminate  VFStatus = "Ready to terminate"
	VFStatusReqTerminate    VFStatus = "Requesting termination"
)

// Fault is the fault/alarm domain payload (§3.3). AlarmCondition,
// SpecificProblem, EventSeverity, EventSourceType, and VFStatus are
// mandatory and immutable once the event is constructed; the rest are
// optional and follow set-once discipline via Option.
type Fault struct {
	AlarmCondition  string
	SpecificProblem string
	EventSeverity   Severity
	EventSourceType SourceType
	VFStatus        VFStatus

	Category  Option[string]
	Interface Option[string]

	AdditionalInfo NameValuePairList
}

// NewFault builds a Fault event with its mandatory fields set, header
// pre-populated with the next sequence number and "now" timestamps.
func NewFault(ctx *Context, alarmCondition, specificProblem string, priority Priority, severity Severity, sourceType SourceType, vfStatus VFStatus) *Event {
	h := ctx.newHeader(DomainFault, alarmCondition, priority, 1, 1)
	return &Event{
		Header: h,
		Payload: &Fault{
			AlarmCondition:  alarmCondition,
			SpecificProblem: specificProblem,
			EventSeverity:   severity,
			EventSourceType: sourceType,
			VFStatus:        vfStatus,
		},
	}
}

// SetCategory sets the optional fault category (set-once).
func (f *Fault) SetCategory(v string, logger logging.Logger) { f.Category.Set(v, "fault.category", logger) }

// SetInterface sets the optional interface name (set-once).
func (f *Fault) SetInterface(v string, logger logging.Logger) {
	f.Interface.Set(v, "fault.interface", logger)
}

// AddAdditionalInfo appends a (name, value) pair, preserving insertion
// order (round-trip guarantee, §8 property 4).
func (f *Fault) AddAdditionalInfo(name, value string) {
	f.AdditionalInfo.Push(name, value)
}
