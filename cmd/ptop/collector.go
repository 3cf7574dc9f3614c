package main

import (
	"context"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	gopsproc "github.com/shirou/gopsutil/v3/process"

	"github.com/paiml/presentar-sub007/metrics"
)

// gopsutilCollector produces one metrics.Snapshot per call using
// gopsutil. It is a demonstration implementation of the external
// collector contract the core consumes through metrics.Bus — production
// deployments are free to replace it with any producer of the same
// opaque Snapshot shape.
type gopsutilCollector struct {
	sampleWindow time.Duration
}

func newGopsutilCollector() *gopsutilCollector {
	return &gopsutilCollector{sampleWindow: 200 * time.Millisecond}
}

func (g *gopsutilCollector) collect(ctx context.Context) (metrics.Snapshot, error) {
	snapshot := metrics.Snapshot{Taken: time.Now()}

	if percentages, err := cpu.PercentWithContext(ctx, g.sampleWindow, true); err == nil {
		snapshot.Cores = make([]metrics.CoreReading, len(percentages))
		for i, p := range percentages {
			snapshot.Cores[i] = metrics.CoreReading{Index: i, UsedPercent: clampPercent(p)}
		}
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		snapshot.Memory = metrics.MemoryReading{
			TotalBytes:     vm.Total,
			UsedBytes:      vm.Used,
			AvailableBytes: vm.Available,
		}
	}
	if swap, err := mem.SwapMemoryWithContext(ctx); err == nil {
		snapshot.Memory.SwapTotalBytes = swap.Total
		snapshot.Memory.SwapUsedBytes = swap.Used
	}

	if procs, err := gopsproc.ProcessesWithContext(ctx); err == nil {
		snapshot.Processes = collectProcesses(ctx, procs)
	}

	snapshot.Clamp()
	return snapshot, nil
}

func collectProcesses(ctx context.Context, procs []*gopsproc.Process) []metrics.ProcessReading {
	readings := make([]metrics.ProcessReading, 0, len(procs))
	for _, p := range procs {
		cpuPct, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			continue
		}
		name, _ := p.NameWithContext(ctx)
		memInfo, _ := p.MemoryInfoWithContext(ctx)
		var rss uint64
		if memInfo != nil {
			rss = memInfo.RSS
		}
		readings = append(readings, metrics.ProcessReading{
			PID:         p.Pid,
			Name:        name,
			CPUPercent:  cpuPct,
			MemoryBytes: rss,
		})
	}
	sort.Slice(readings, func(i, j int) bool {
		return readings[i].CPUPercent > readings[j].CPUPercent
	})
	if len(readings) > metrics.MaxProcesses {
		readings = readings[:metrics.MaxProcesses]
	}
	return readings
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// hostInContainer reports whether gopsutil believes the process is
// running inside a container, one input to SystemCapabilities.InContainer.
// Battery, GPU, and sensor presence need platform-specific probes
// (sysfs, nvidia-smi, IOKit) outside gopsutil's portable surface; this
// demo collector leaves those false and documents the gap rather than
// guessing.
func hostInContainer(ctx context.Context) bool {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return false
	}
	return info.VirtualizationRole == "guest"
}
