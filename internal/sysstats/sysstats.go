// Package sysstats populates a Measurement event's CPU, memory, and
// filesystem fields from host telemetry (§4.8 "queries platform
// metadata"), completing the measurement-domain coverage the wire
// protocol describes beyond the identifiers a caller supplies directly.
//
// Uses the same cpu/mem/disk v3 subpackages an agent-style collector
// reaches for to sample host telemetry, adapted here to populate
// eventmodel.Measurement instead of a bespoke telemetry sample struct.
package sysstats

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/bc-dunia/govel/internal/eventmodel"
	"github.com/bc-dunia/govel/internal/logging"
)

// Sampler fills in the host-level fields of a Measurement event. The
// zero value is ready to use; Logger defaults to a no-op if unset.
type Sampler struct {
	Logger logging.Logger

	// FilesystemPaths lists the mount points to report as
	// filesystemUsageArray entries. A nil slice samples nothing.
	FilesystemPaths []string
}

// NewSampler returns a Sampler reporting root filesystem usage and CPU/
// memory aggregates, logging failures (non-fatal, per §4.8) through
// logger.
func NewSampler(logger logging.Logger, filesystemPaths ...string) *Sampler {
	if logger == nil {
		logger = logging.Noop()
	}
	if len(filesystemPaths) == 0 {
		filesystemPaths = []string{"/"}
	}
	return &Sampler{Logger: logger, FilesystemPaths: filesystemPaths}
}

// Populate samples host CPU, memory, and filesystem usage and records
// them on m. Every sub-sample failure is logged and skipped rather than
// propagated: a VNF that cannot see one counter should still ship the
// rest of the measurement.
func (s *Sampler) Populate(ctx context.Context, m *eventmodel.Measurement) {
	logger := s.Logger
	if logger == nil {
		logger = logging.Noop()
	}

	if percents, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		logger.Warn("sysstats: cpu sample failed", "error", err)
	} else if len(percents) > 0 {
		m.SetAggregateCPUUsage(percents[0], logger)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		logger.Warn("sysstats: memory sample failed", "error", err)
	} else if vm != nil {
		m.SetMemory(bytesToMiB(vm.Total), bytesToMiB(vm.Used), logger)
	}

	for _, path := range s.FilesystemPaths {
		usage, err := disk.UsageWithContext(ctx, path)
		if err != nil {
			logger.Warn("sysstats: filesystem sample failed", "path", path, "error", err)
			continue
		}
		m.AddFilesystemUsage(eventmodel.FilesystemUsage{
			FilesystemName:      path,
			BlockConfigured:     bytesToGiB(usage.Total),
			BlockUsed:           bytesToGiB(usage.Used),
			EphemeralConfigured: 0,
			EphemeralIops:       0,
			EphemeralUsed:       0,
		})
	}
}

func bytesToMiB(b uint64) float64 { return float64(b) / (1024 * 1024) }
func bytesToGiB(b uint64) float64 { return float64(b) / (1024 * 1024 * 1024) }
