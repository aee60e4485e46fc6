package velencode

import "github.com/bc-dunia/govel/internal/eventmodel"

// encodeIdentifiedArray writes a named array of objects that each carry
// an identifying name, honoring both field-level suppression of the
// container key and per-item suppression by identifier (§4.3, §8
// scenario S3: suppressing every identifier present empties the
// container, which is then omitted entirely via rewind).
func encodeIdentifiedArray[T any](b *Buffer, key string, items []T, id func(T) string, write func(*Buffer, T)) {
	if len(items) == 0 {
		return
	}
	b.Checkpoint()
	if !b.OpenOptNamedList(key) {
		b.Rewind()
		return
	}
	wrote := false
	for _, item := range items {
		if b.suppressNVPair(key, id(item)) {
			continue
		}
		b.kvComma()
		write(b, item)
		wrote = true
	}
	b.CloseList()
	if !wrote {
		b.Rewind()
	}
}

func encodeCPUUsage(b *Buffer, c eventmodel.CPUUsage) {
	b.buf.WriteByte('{')
	b.KVString("cpuIdentifier", c.ID)
	b.KVOptDouble("cpuIdle", &c.Idle)
	b.KVOptDouble("cpuInterrupt", &c.Interrupt)
	b.KVOptDouble("cpuNice", &c.Nice)
	b.KVOptDouble("cpuSoftIrq", &c.SoftIRQ)
	b.KVOptDouble("cpuSteal", &c.Steal)
	b.KVOptDouble("cpuSystem", &c.System)
	b.KVOptDouble("cpuUsage", &c.Usage)
	b.KVOptDouble("cpuUser", &c.User)
	b.KVOptDouble("cpuWait", &c.Wait)
	b.buf.WriteByte('}')
}

func encodeFilesystemUsage(b *Buffer, f eventmodel.FilesystemUsage) {
	b.buf.WriteByte('{')
	b.KVString("filesystemName", f.FilesystemName)
	b.KVDouble("blockConfigured", f.BlockConfigured)
	b.KVDouble("blockIops", f.BlockIops)
	b.KVDouble("blockUsed", f.BlockUsed)
	b.KVDouble("ephemeralConfigured", f.EphemeralConfigured)
	b.KVDouble("ephemeralIops", f.EphemeralIops)
	b.KVDouble("ephemeralUsed", f.EphemeralUsed)
	b.buf.WriteByte('}')
}

func encodeLatencyBucket(b *Buffer, l eventmodel.LatencyBucket) {
	b.buf.WriteByte('{')
	b.KVDouble("lowEndInclusive", l.LowEndInclusive)
	b.KVDouble("highEndExclusive", l.HighEndExclusive)
	b.KVInt("count", l.Count)
	b.buf.WriteByte('}')
}

func encodeVNICUsage(b *Buffer, v eventmodel.VNICUsage) {
	b.buf.WriteByte('{')
	b.KVString("vNicIdentifier", v.VNICID)
	b.KVBool("valuesAreSuspect", v.ValuesAreSuspect)
	b.KVOptUint("receivedBroadcastPacketsAccumulated", &v.BroadcastPacketsIn)
	b.KVOptUint("receivedBroadcastPacketsDelta", &v.BroadcastPacketsInDelta)
	b.KVOptUint("transmittedBroadcastPacketsAccumulated", &v.BroadcastPacketsOut)
	b.KVOptUint("transmittedBroadcastPacketsDelta", &v.BroadcastPacketsOutDelta)
	b.KVOptUint("receivedOctetsAccumulated", &v.BytesIn)
	b.KVOptUint("receivedOctetsDelta", &v.BytesInDelta)
	b.KVOptUint("transmittedOctetsAccumulated", &v.BytesOut)
	b.KVOptUint("transmittedOctetsDelta", &v.BytesOutDelta)
	b.KVOptUint("receivedMulticastPacketsAccumulated", &v.MulticastPacketsIn)
	b.KVOptUint("receivedMulticastPacketsDelta", &v.MulticastPacketsInDelta)
	b.KVOptUint("transmittedMulticastPacketsAccumulated", &v.MulticastPacketsOut)
	b.KVOptUint("transmittedMulticastPacketsDelta", &v.MulticastPacketsOutDelta)
	b.KVOptUint("receivedTotalPacketsAccumulated", &v.PacketsIn)
	b.KVOptUint("receivedTotalPacketsDelta", &v.PacketsInDelta)
	b.KVOptUint("transmittedTotalPacketsAccumulated", &v.PacketsOut)
	b.KVOptUint("transmittedTotalPacketsDelta", &v.PacketsOutDelta)
	b.KVOptUint("receivedUnicastPacketsAccumulated", &v.UnicastPacketsIn)
	b.KVOptUint("receivedUnicastPacketsDelta", &v.UnicastPacketsInDelta)
	b.KVOptUint("transmittedUnicastPacketsAccumulated", &v.UnicastPacketsOut)
	b.KVOptUint("transmittedUnicastPacketsDelta", &v.UnicastPacketsOutDelta)
	b.buf.WriteByte('}')
}

func encodeCodecUsage(b *Buffer, c eventmodel.CodecUsage) {
	b.buf.WriteByte('{')
	b.KVString("codecIdentifier", c.CodecID)
	b.KVInt("numberInUse", c.NumberInUse)
	b.buf.WriteByte('}')
}

func encodeFeatureUsage(b *Buffer, f eventmodel.FeatureUsage) {
	b.buf.WriteByte('{')
	b.KVString("featureIdentifier", f.FeatureID)
	b.KVInt("featureUtilization", f.UtilizationCount)
	b.buf.WriteByte('}')
}

// encodeAdditionalMeasurementGroups writes the two-level
// additionalMeasurements array: each group names itself and carries a
// nested name/value measurements array.
func encodeAdditionalMeasurementGroups(b *Buffer, domain eventmodel.Domain, groups []*eventmodel.NamedValuesGroup) {
	if len(groups) == 0 {
		return
	}
	b.Checkpoint()
	if !b.OpenOptNamedList("additionalMeasurements") {
		b.Rewind()
		return
	}
	for _, g := range groups {
		b.kvComma()
		b.buf.WriteByte('{')
		b.KVString("name", g.Name)
		b.WriteNameValuePairList("measurements", g.Values.Items())
		b.buf.WriteByte('}')
	}
	b.CloseList()
}

func encodeErrorCounters(b *Buffer, e eventmodel.ErrorCounters) {
	b.buf.WriteByte('{')
	b.KVOptInt("receiveDiscards", &e.ReceiveDiscards)
	b.KVOptInt("receiveErrors", &e.ReceiveErrors)
	b.KVOptInt("transmitDiscards", &e.TransmitDiscards)
	b.KVOptInt("transmitErrors", &e.TransmitErrors)
	b.buf.WriteByte('}')
}

// encodeMeasurementFields writes measurementsForVfScalingFields:
// mandatory interval, scalar optionals, the errors sub-object, the
// identifier-suppressible array collections, the additional-
// measurements groups, and the fixed schema version last.
func encodeMeasurementFields(b *Buffer, ev *eventmodel.Event) {
	m := ev.Payload.(*eventmodel.Measurement)

	b.OpenNamedObject("measurementsForVfScalingFields")
	b.KVDouble("measurementInterval", m.MeasurementInterval)
	b.KVOptDouble("aggregateCpuUsage", &m.AggregateCPUUsage)
	b.KVOptInt("concurrentSessions", &m.ConcurrentSessions)
	b.KVOptInt("configuredEntities", &m.ConfiguredEntities)
	b.KVOptDouble("meanRequestLatency", &m.MeanRequestLatency)
	b.KVOptInt("mediaPortsInUse", &m.MediaPortsInUse)
	b.KVOptDouble("memoryConfigured", &m.MemoryConfigured)
	b.KVOptDouble("memoryUsed", &m.MemoryUsed)
	b.KVOptInt("requestRate", &m.RequestRate)
	b.KVOptDouble("vnfcScalingMetric", &m.VNFCScalingMetric)

	if errs, ok := m.Errors.Get(); ok && !b.suppressField("errors") {
		b.kvComma()
		b.writeKey("errors")
		b.buf.WriteString(": ")
		encodeErrorCounters(b, errs)
	}

	encodeIdentifiedArray(b, "cpuUsageArray", m.CPUUsageArray, func(c eventmodel.CPUUsage) string { return c.ID }, encodeCPUUsage)
	encodeIdentifiedArray(b, "filesystemUsageArray", m.FilesystemUsageArray, func(f eventmodel.FilesystemUsage) string { return f.FilesystemName }, encodeFilesystemUsage)
	encodeIdentifiedArray(b, "vNicUsageArray", m.VNICUsageArray, func(v eventmodel.VNICUsage) string { return v.VNICID }, encodeVNICUsage)
	encodeIdentifiedArray(b, "codecUsageArray", m.CodecUsageArray, func(c eventmodel.CodecUsage) string { return c.CodecID }, encodeCodecUsage)
	encodeIdentifiedArray(b, "featureUsageArray", m.FeatureUsageArray, func(f eventmodel.FeatureUsage) string { return f.FeatureID }, encodeFeatureUsage)

	if len(m.LatencyDistribution) > 0 && b.OpenOptNamedList("latencyDistribution") {
		for _, l := range m.LatencyDistribution {
			b.kvComma()
			encodeLatencyBucket(b, l)
		}
		b.CloseList()
	}

	encodeAdditionalMeasurementGroups(b, ev.Header.Domain, m.AdditionalMeasurements.Groups())

	b.KVVersion("measurementFieldsVersion", 1, 1)
	b.CloseObject()
}
