// Package metrics carries opaque MetricsSnapshot values from a background
// collector into the application state via a single-slot mailbox, so the
// UI thread never blocks waiting on platform metric readers.
package metrics

import "time"

// CoreReading is one logical CPU core's instantaneous load, frequency,
// and (if available) temperature.
type CoreReading struct {
	Index       int
	UsedPercent float64
	FreqMHz     float64
	TempCelsius float64
	HasTemp     bool
}

// MemoryReading summarizes system memory at snapshot time.
type MemoryReading struct {
	TotalBytes     uint64
	UsedBytes      uint64
	AvailableBytes uint64
	SwapTotalBytes uint64
	SwapUsedBytes  uint64
}

// ProcessReading is one row of the process table.
type ProcessReading struct {
	PID         int32
	Name        string
	CPUPercent  float64
	MemoryBytes uint64
}

// NetworkReading is cumulative and instantaneous throughput for one
// interface.
type NetworkReading struct {
	Interface   string
	BytesRecv   uint64
	BytesSent   uint64
	RecvPerSec  float64
	SentPerSec  float64
}

// GPUReading is one GPU device's utilization and memory, when the
// collector could read it.
type GPUReading struct {
	Index         int
	Name          string
	UsedPercent   float64
	MemUsedBytes  uint64
	MemTotalBytes uint64
	TempCelsius   float64
}

// BatteryReading is the host's battery state, when present.
type BatteryReading struct {
	Percent    float64
	Charging   bool
	TimeToFull time.Duration
	TimeToDrop time.Duration
}

// MaxProcesses bounds the process table a snapshot may carry; the
// collector truncates to this many rows, sorted by CPU percent
// descending, so apply_snapshot never allocates unbounded memory.
const MaxProcesses = 200

// Snapshot is the opaque unit the collector publishes and the UI applies.
// Fields the collector could not populate this cycle are left at their
// zero value; apply logic (outside this package, in app.State) retains
// the previous value for any field not present rather than clobbering it
// with a zero.
type Snapshot struct {
	Taken     time.Time
	Cores     []CoreReading
	Memory    MemoryReading
	Processes []ProcessReading
	Networks  []NetworkReading
	GPUs      []GPUReading
	Battery   BatteryReading
	HasBattery bool
}

// Clamp truncates Processes to MaxProcesses in place, preserving order
// (callers are expected to have already sorted by relevance).
func (s *Snapshot) Clamp() {
	if len(s.Processes) > MaxProcesses {
		s.Processes = s.Processes[:MaxProcesses]
	}
}
