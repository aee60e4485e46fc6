package eventmodel

import "github.com/bc-dunia/govel/internal/logging"

// CPUUsage is one entry of the cpuUsageArray collection (§3.3
// Measurement): an identifier plus nine utilization percentages.
type CPUUsage struct {
	ID             string
	Idle           Option[float64]
	Interrupt      Option[float64]
	Nice           Option[float64]
	SoftIRQ        Option[float64]
	Steal          Option[float64]
	System         Option[float64]
	Usage          Option[float64]
	User           Option[float64]
	Wait           Option[float64]
}

// FilesystemUsage is one entry of the filesystemUsageArray collection.
type FilesystemUsage struct {
	FilesystemName  string
	BlockConfigured float64
	BlockIops       float64
	BlockUsed       float64
	EphemeralConfigured float64
	EphemeralIops       float64
	EphemeralUsed       float64
}

// LatencyBucket is one bucket of a latency-distribution histogram.
type LatencyBucket struct {
	LowEndInclusive  float64
	HighEndExclusive float64
	Count            int64
}

// VNICUsage is one entry of the vNicUsageArray collection: an interface
// identifier, a values-are-suspect flag, and 20 optional counters
// (accumulated and delta pairs for broadcast, byte, multicast, total,
// and unicast traffic in each direction). There is no active flag and
// no further counter fields. Only the counters actually populated by a
// caller are emitted.
type VNICUsage struct {
	VNICID     string
	ValuesAreSuspect bool

	BroadcastPacketsIn      Option[uint64]
	BroadcastPacketsOut     Option[uint64]
	BytesIn                 Option[uint64]
	BytesOut                Option[uint64]
	MulticastPacketsIn      Option[uint64]
	MulticastPacketsOut     Option[uint64]
	PacketsIn               Option[uint64]
	PacketsOut              Option[uint64]
	UnicastPacketsIn        Option[uint64]
	UnicastPacketsOut       Option[uint64]

	BroadcastPacketsInDelta  Option[uint64]
	BroadcastPacketsOutDelta Option[uint64]
	BytesInDelta             Option[uint64]
	BytesOutDelta            Option[uint64]
	MulticastPacketsInDelta  Option[uint64]
	MulticastPacketsOutDelta Option[uint64]
	PacketsInDelta           Option[uint64]
	PacketsOutDelta          Option[uint64]
	UnicastPacketsInDelta    Option[uint64]
	UnicastPacketsOutDelta   Option[uint64]
}

// CodecUsage is one entry of the codecUsageArray collection.
type CodecUsage struct {
	CodecID    string
	NumberInUse int64
}

// FeatureUsage is one entry of the featureUsageArray collection.
type FeatureUsage struct {
	FeatureID      string
	UtilizationCount int64
}

// ErrorCounters is the optional errors sub-object: receive/transmit
// discards and errors.
type ErrorCounters struct {
	ReceiveDiscards  Option[int64]
	ReceiveErrors    Option[int64]
	TransmitDiscards Option[int64]
	TransmitErrors   Option[int64]
}

// Measurement is the measurementsForVfScaling domain payload (§3.3).
type Measurement struct {
	MeasurementInterval float64 // seconds, >= 0

	AggregateCPUUsage      Option[float64]
	ConfiguredEntities     Option[int64]
	ConcurrentSessions     Option[int64]
	MeanRequestLatency     Option[float64]
	MediaPortsInUse        Option[int64]
	MemoryConfigured       Option[float64]
	MemoryUsed             Option[float64]
	RequestRate            Option[int64]
	VNFCScalingMetric      Option[float64]
	Errors                 Option[ErrorCounters]

	CPUUsageArray        []CPUUsage
	FilesystemUsageArray []FilesystemUsage
	LatencyDistribution  []LatencyBucket
	VNICUsageArray       []VNICUsage
	CodecUsageArray      []CodecUsage
	FeatureUsageArray    []FeatureUsage
	AdditionalMeasurements NamedValuesGroupList
}

// NewMeasurement builds a Measurement event. intervalSeconds must be >= 0.
func NewMeasurement(ctx *Context, intervalSeconds float64, priority Priority) *Event {
	h := ctx.newHeader(DomainMeasurement, "measurement", priority, 3, 0)
	return &Event{
		Header: h,
		Payload: &Measurement{
			MeasurementInterval: intervalSeconds,
		},
	}
}

func (m *Measurement) SetAggregateCPUUsage(v float64, logger logging.Logger) {
	m.AggregateCPUUsage.Set(v, "measurement.aggregateCpuUsage", logger)
}

func (m *Measurement) SetMemory(configured, used float64, logger logging.Logger) {
	m.MemoryConfigured.Set(configured, "measurement.memoryConfigured", logger)
	m.MemoryUsed.Set(used, "measurement.memoryUsed", logger)
}

func (m *Measurement) SetRequestRate(v int64, logger logging.Logger) {
	m.RequestRate.Set(v, "measurement.requestRate", logger)
}

func (m *Measurement) SetMeanRequestLatency(v float64, logger logging.Logger) {
	m.MeanRequestLatency.Set(v, "measurement.meanRequestLatency", logger)
}

func (m *Measurement) SetConcurrentSessions(v int64, logger logging.Logger) {
	m.ConcurrentSessions.Set(v, "measurement.concurrentSessions", logger)
}

func (m *Measurement) SetConfiguredEntities(v int64, logger logging.Logger) {
	m.ConfiguredEntities.Set(v, "measurement.configuredEntities", logger)
}

func (m *Measurement) SetMediaPortsInUse(v int64, logger logging.Logger) {
	m.MediaPortsInUse.Set(v, "measurement.mediaPortsInUse", logger)
}

func (m *Measurement) SetVNFCScalingMetric(v float64, logger logging.Logger) {
	m.VNFCScalingMetric.Set(v, "measurement.vnfcScalingMetric", logger)
}

func (m *Measurement) SetErrors(v ErrorCounters, logger logging.Logger) {
	m.Errors.Set(v, "measurement.errors", logger)
}

func (m *Measurement) AddCPUUsage(u CPUUsage)             { m.CPUUsageArray = append(m.CPUUsageArray, u) }
func (m *Measurement) AddFilesystemUsage(u FilesystemUsage) {
	m.FilesystemUsageArray = append(m.FilesystemUsageArray, u)
}
func (m *Measurement) AddLatencyBucket(b LatencyBucket) {
	m.LatencyDistribution = append(m.LatencyDistribution, b)
}
func (m *Measurement) AddVNICUsage(v VNICUsage) { m.VNICUsageArray = append(m.VNICUsageArray, v) }
func (m *Measurement) AddCodecUsage(c CodecUsage) {
	m.CodecUsageArray = append(m.CodecUsageArray, c)
}
func (m *Measurement) AddFeatureUsage(f FeatureUsage) {
	m.FeatureUsageArray = append(m.FeatureUsageArray, f)
}

// AdditionalMeasurementGroup returns the named group for name, creating
// it if absent. Duplicate group names are never silently merged by the
// caller's own lookups; this is the search-before-insert entry point
// §4.2 requires.
func (m *Measurement) AdditionalMeasurementGroup(name string) *NamedValuesGroup {
	return m.AdditionalMeasurements.FindOrAdd(name)
}
