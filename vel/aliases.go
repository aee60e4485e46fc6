// Package vel is the public API of govel: a Vendor Event Listener (VEL)
// client library. It re-exports the event model (option primitives,
// the shared header, and the ten domain payload types with their
// factories/setters) and exposes the library lifecycle — Initialize,
// PostEvent, Terminate, GetMeasurementInterval — on a Client so a host
// process can run more than one VNF identity without resorting to
// package-level globals (§4.8, §6.3, §9 "shared mutable state" design
// note: the sequence counter and source identity live on an explicit
// context rather than a global).
package vel

import (
	"github.com/bc-dunia/govel/internal/eventmodel"
	"github.com/bc-dunia/govel/internal/logging"
	"github.com/bc-dunia/govel/internal/obs"
	"github.com/bc-dunia/govel/internal/transport"
)

// Logger is the leveled logger interface consumed throughout govel
// (§1 "logging subsystem: consumed as an opaque leveled logger").
type Logger = logging.Logger

// NewLogger builds the default slog-JSON-backed Logger.
var NewLogger = logging.New

// NoopLogger returns a Logger that discards everything.
var NoopLogger = logging.Noop

// Option is the generic "maybe-set" wrapper used for every optional
// event field (§3.2).
type Option[T any] = eventmodel.Option[T]

// Context carries the process-wide sequence counter and default
// identity every event factory needs (§9 "shared mutable state").
type Context = eventmodel.Context

// NewContext builds a Context with the supplied identity defaults.
var NewContext = eventmodel.NewContext

// Event is the tagged wrapper carrying a header and one domain payload.
type Event = eventmodel.Event

// Domain selects an event's payload schema and throttle scope (§3.1).
type Domain = eventmodel.Domain

const (
	DomainHeartbeat   = eventmodel.DomainHeartbeat
	DomainFault       = eventmodel.DomainFault
	DomainMeasurement = eventmodel.DomainMeasurement
	DomainMobileFlow  = eventmodel.DomainMobileFlow
	DomainReport      = eventmodel.DomainReport
	DomainService     = eventmodel.DomainService
	DomainSignaling   = eventmodel.DomainSignaling
	DomainStateChange = eventmodel.DomainStateChange
	DomainSyslog      = eventmodel.DomainSyslog
	DomainOther       = eventmodel.DomainOther
)

// Priority is the event priority enum (§3.1).
type Priority = eventmodel.Priority

const (
	PriorityHigh   = eventmodel.PriorityHigh
	PriorityMedium = eventmodel.PriorityMedium
	PriorityNormal = eventmodel.PriorityNormal
	PriorityLow    = eventmodel.PriorityLow
)

// SourceType mirrors the VNF equipment-type enum used to seed default
// event-source metadata.
type SourceType = eventmodel.SourceType

const (
	SourceOther                  = eventmodel.SourceOther
	SourceRouter                 = eventmodel.SourceRouter
	SourceSwitch                 = eventmodel.SourceSwitch
	SourceHost                   = eventmodel.SourceHost
	SourceCard                   = eventmodel.SourceCard
	SourcePort                   = eventmodel.SourcePort
	SourceSlotThreshold          = eventmodel.SourceSlotThreshold
	SourcePortThreshold          = eventmodel.SourcePortThreshold
	SourceVirtualMachine         = eventmodel.SourceVirtualMachine
	SourceVirtualNetworkFunction = eventmodel.SourceVirtualNetworkFunction
)

// Severity is the fault/syslog severity enum (§3.3).
type Severity = eventmodel.Severity

const (
	SeverityCritical = eventmodel.SeverityCritical
	SeverityMajor    = eventmodel.SeverityMajor
	SeverityMinor    = eventmodel.SeverityMinor
	SeverityWarning  = eventmodel.SeverityWarning
	SeverityNormal   = eventmodel.SeverityNormal
)

// VFStatus is the virtual-function status enum (§3.3 Fault).
type VFStatus = eventmodel.VFStatus

const (
	VFStatusActive         = eventmodel.VFStatusActive
	VFStatusIdle           = eventmodel.VFStatusIdle
	VFStatusPrepTerminate  = eventmodel.VFStatusPrepTerminate
	VFStatusReadyTerminate = eventmodel.VFStatusReadyTerminate
	VFStatusReqTerminate   = eventmodel.VFStatusReqTerminate
)

// EntityState is the state-change entity-state enum (§3.3 State change).
type EntityState = eventmodel.EntityState

const (
	EntityStateInService    = eventmodel.EntityStateInService
	EntityStateOutOfService = eventmodel.EntityStateOutOfService
	EntityStateMaintenance  = eventmodel.EntityStateMaintenance
)

// SyslogFacility mirrors the RFC 5424 facility enum (§3.3 Syslog).
type SyslogFacility = eventmodel.SyslogFacility

const (
	FacilityKernel       = eventmodel.FacilityKernel
	FacilityUser         = eventmodel.FacilityUser
	FacilityMail         = eventmodel.FacilityMail
	FacilitySystem       = eventmodel.FacilitySystem
	FacilityLocal0       = eventmodel.FacilityLocal0
	FacilityLocal1       = eventmodel.FacilityLocal1
	FacilityLocal2       = eventmodel.FacilityLocal2
	FacilityLocal3       = eventmodel.FacilityLocal3
	FacilityLocal4       = eventmodel.FacilityLocal4
	FacilityLocal5       = eventmodel.FacilityLocal5
	FacilityLocal6       = eventmodel.FacilityLocal6
	FacilityLocal7       = eventmodel.FacilityLocal7
)

// NameValuePair and NameValuePairList back every "additional info"
// collection across domains (§3.3, round-trip order guarantee).
type NameValuePair = eventmodel.NameValuePair
type NameValuePairList = eventmodel.NameValuePairList

// NamedValuesGroup and NamedValuesGroupList back Measurement's two-level
// additional-measurements collection (§4.2).
type NamedValuesGroup = eventmodel.NamedValuesGroup
type NamedValuesGroupList = eventmodel.NamedValuesGroupList

// Domain payload types (§3.3).
type (
	Heartbeat   = eventmodel.Heartbeat
	Fault       = eventmodel.Fault
	Measurement = eventmodel.Measurement
	MobileFlow  = eventmodel.MobileFlow
	Report      = eventmodel.Report
	Service     = eventmodel.Service
	Signaling   = eventmodel.Signaling
	StateChange = eventmodel.StateChange
	Syslog      = eventmodel.Syslog
	Other       = eventmodel.Other
	Batch       = eventmodel.Batch
)

// Measurement collection element types (§3.3 Measurement).
type (
	CPUUsage        = eventmodel.CPUUsage
	FilesystemUsage = eventmodel.FilesystemUsage
	LatencyBucket   = eventmodel.LatencyBucket
	VNICUsage       = eventmodel.VNICUsage
	CodecUsage      = eventmodel.CodecUsage
	FeatureUsage    = eventmodel.FeatureUsage
	ErrorCounters   = eventmodel.ErrorCounters
)

// Mobile-flow sub-record (§3.3 Mobile flow).
type GTPPerFlowMetrics = eventmodel.GTPPerFlowMetrics

// Domain factories (§4.2). Each returns an owned *Event whose header is
// pre-populated with the next sequence number and "now" timestamps.
var (
	NewHeartbeat   = eventmodel.NewHeartbeat
	NewFault       = eventmodel.NewFault
	NewMeasurement = eventmodel.NewMeasurement
	NewMobileFlow  = eventmodel.NewMobileFlow
	NewReport      = eventmodel.NewReport
	NewService     = eventmodel.NewService
	NewSignaling   = eventmodel.NewSignaling
	NewStateChange = eventmodel.NewStateChange
	NewSyslog      = eventmodel.NewSyslog
	NewOther       = eventmodel.NewOther
	NewBatch       = eventmodel.NewBatch
)

// Credentials holds HTTP basic-auth credentials forwarded to the
// transport adapter (§1 "no authentication beyond forwarding
// credentials to transport").
type Credentials = transport.Credentials

// MetricsConfig and TracingConfig configure the optional observability
// layer (A1); both default to disabled (§4.9).
type MetricsConfig = obs.MetricsConfig
type TracingConfig = obs.Config

// DefaultMetricsConfig and DefaultTracingConfig return the disabled
// defaults a caller can enable selected fields on.
var DefaultMetricsConfig = obs.DefaultMetricsConfig
var DefaultTracingConfig = obs.DefaultConfig
