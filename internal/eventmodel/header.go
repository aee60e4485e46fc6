package eventmodel

import "time"

// Domain selects the payload schema and throttle scope for an event
// (§3.1). Batch and Internal never appear on the wire as a domain value
// in their own right: Batch wraps other envelopes, Internal is the
// sentinel used to wake/stop the consumer.
type Domain string

const (
	DomainHeartbeat    Domain = "heartbeat"
	DomainFault        Domain = "fault"
	DomainMeasurement  Domain = "measurement"
	DomainMobileFlow   Domain = "mobileFlow"
	DomainReport       Domain = "report"
	DomainService      Domain = "service"
	DomainSignaling    Domain = "signaling"
	DomainStateChange  Domain = "stateChange"
	DomainSyslog       Domain = "syslog"
	DomainOther        Domain = "other"
	DomainInternal     Domain = "internal"
	DomainBatch        Domain = "batch"
)

// wireDomain maps the internal Domain enum to the exact string the
// collector schema expects in commonEventHeader.domain (§6.1).
var wireDomain = map[Domain]string{
	DomainHeartbeat:   "heartbeat",
	DomainFault:       "fault",
	DomainMeasurement: "measurementsForVfScaling",
	DomainMobileFlow:  "mobileFlow",
	DomainReport:      "measurementsForVfReporting",
	DomainService:     "serviceEvents",
	DomainSignaling:   "signaling",
	DomainStateChange: "stateChange",
	DomainSyslog:      "syslog",
	DomainOther:       "other",
}

// WireName returns the collector-schema string for d, or "" if d has no
// wire representation (Internal, Batch).
func (d Domain) WireName() string { return wireDomain[d] }

// DomainFromWireName reverses WireName, used to resolve the
// "eventDomain" field of an inbound throttlingSpecification command
// (§4.7) back to a Domain. Returns "" for an unrecognized name.
func DomainFromWireName(name string) Domain {
	for domain, wire := range wireDomain {
		if wire == name {
			return domain
		}
	}
	return ""
}

// ThrottleDomains lists the nine external domains the throttle registry
// (C4) tracks specs for, in a stable order useful for iteration and for
// building a deterministic provide-throttling-state reply.
var ThrottleDomains = []Domain{
	DomainHeartbeat,
	DomainFault,
	DomainMeasurement,
	DomainMobileFlow,
	DomainReport,
	DomainService,
	DomainSignaling,
	DomainStateChange,
	DomainSyslog,
}

// Priority is the event priority enum (§3.1).
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityNormal Priority = "Normal"
	PriorityLow    Priority = "Low"
)

// Header is the shared envelope every event carries (§3.1). Mandatory
// fields are plain values set at construction; optional fields use
// Option and enforce set-once discipline via Set.
type Header struct {
	Domain                Domain
	Sequence              int64
	EventID               string
	EventName             string
	FunctionalRole        string
	Priority              Priority
	StartEpochMicrosec    int64
	LastEpochMicrosec     int64
	ReportingEntityName   string
	SourceName            string
	MajorVersion          int
	MinorVersion          int

	EventType         Option[string]
	ReportingEntityID Option[string]
	SourceID          Option[string]
}

// touch bumps LastEpochMicrosec to now, preserving the invariant that
// StartEpochMicrosec <= LastEpochMicrosec.
func (h *Header) touch(now time.Time) {
	us := now.UnixMicro()
	if us < h.StartEpochMicrosec {
		us = h.StartEpochMicrosec
	}
	h.LastEpochMicrosec = us
}
