package eventmodel

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// SourceType mirrors the VNF equipment-type enum used to seed default
// event-source metadata.
type SourceType string

const (
	SourceOther                  SourceType = "other"
	SourceRouter                 SourceType = "router"
	SourceSwitch                 SourceType = "switch"
	SourceHost                   SourceType = "host"
	SourceCard                   SourceType = "card"
	SourcePort                   SourceType = "port"
	SourceSlotThreshold          SourceType = "slotThreshold"
	SourcePortThreshold          SourceType = "portThreshold"
	SourceVirtualMachine         SourceType = "virtualMachine"
	SourceVirtualNetworkFunction SourceType = "virtualNetworkFunction"
)

// Context carries the process-wide state that event factories need but
// that must not be a package-level global: the monotonic sequence
// counter, the default reporting-entity/source identity, and the
// functional role advertised for every event (§9 "Shared mutable
// state" design note). A host application builds exactly one Context at
// Initialize time and passes it to every factory call.
type Context struct {
	sequence atomic.Int64

	FunctionalRole      string
	SourceType          SourceType
	ReportingEntityName string
	ReportingEntityID   string
	SourceName          string
	SourceID            string
}

// NewContext builds a Context with the supplied identity defaults. If
// reportingEntityID is empty, a random UUID is generated; if sourceID is
// empty, it takes the (possibly generated) reportingEntityID — this is
// the fallback used when platform metadata discovery (an
// external collaborator, out of scope for this library) did not supply
// one, matching §4.8's "queries platform metadata (failures non-fatal)".
func NewContext(functionalRole string, sourceType SourceType, reportingEntityName, reportingEntityID, sourceName, sourceID string) *Context {
	if reportingEntityID == "" {
		reportingEntityID = uuid.NewString()
	}
	if sourceID == "" {
		sourceID = reportingEntityID
	}
	return &Context{
		FunctionalRole:      functionalRole,
		SourceType:          sourceType,
		ReportingEntityName: reportingEntityName,
		ReportingEntityID:   reportingEntityID,
		SourceName:          sourceName,
		SourceID:            sourceID,
	}
}

// NextSequence atomically increments and returns the next sequence
// number. Sequence numbers are strictly increasing within a process
// (§3.1 invariant, testable property 1).
func (c *Context) NextSequence() int64 {
	return c.sequence.Add(1)
}

// SetNextSequence sets the counter so the next NextSequence() call
// returns exactly n. Used by tests (spec scenario S1: set_next_sequence)
// and by hosts resuming a known sequence range.
func (c *Context) SetNextSequence(n int64) {
	c.sequence.Store(n - 1)
}

// newHeader builds a Header pre-populated with the next sequence number
// and "now" timestamps for both start and last epoch, per §4.2.
func (c *Context) newHeader(domain Domain, eventName string, priority Priority, major, minor int) Header {
	seq := c.NextSequence()
	now := time.Now().UnixMicro()
	h := Header{
		Domain:              domain,
		Sequence:            seq,
		EventName:           eventName,
		FunctionalRole:      c.FunctionalRole,
		Priority:            priority,
		StartEpochMicrosec:  now,
		LastEpochMicrosec:   now,
		ReportingEntityName: c.ReportingEntityName,
		SourceName:          c.SourceName,
		MajorVersion:        1,
		MinorVersion:        2,
	}
	h.EventID = eventIDFromSequence(seq)
	if c.ReportingEntityID != "" {
		h.ReportingEntityID.Force(c.ReportingEntityID)
	}
	if c.SourceID != "" {
		h.SourceID.Force(c.SourceID)
	}
	return h
}

func eventIDFromSequence(seq int64) string {
	return strconv.FormatInt(seq, 10)
}
