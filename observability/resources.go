// Package observability collects process self-stats for run reporting.
package observability

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"
)

// ResourceSnapshot is a one-shot picture of the generator process, taken
// right after a run finishes.
type ResourceSnapshot struct {
	RSSBytes   uint64
	CPUPercent float64
	Status     string
	Goroutines int
	AllocMemMb uint64
	NumGC      uint32
}

// Snapshot retrieves technical metrics (Memory, CPU, and OS Status) for the
// current process, plus the Go runtime side.
func Snapshot() (ResourceSnapshot, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ResourceSnapshot{}, err
	}

	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ResourceSnapshot{}, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return ResourceSnapshot{}, err
	}

	status, err := p.Status()
	if err != nil {
		return ResourceSnapshot{}, err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return ResourceSnapshot{
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpuPercent,
		Status:     status,
		Goroutines: runtime.NumGoroutine(),
		AllocMemMb: m.Alloc / 1024 / 1024,
		NumGC:      m.NumGC,
	}, nil
}

// LogSnapshot writes the snapshot at debug level. Collection failures are
// logged and swallowed, self-stats never fail a run.
func LogSnapshot(log *slog.Logger) {
	snap, err := Snapshot()
	if err != nil {
		log.Debug("Failed to collect self stats", "err", err)
		return
	}

	log.Debug("📊 Run resource usage",
		"rss_mb", snap.RSSBytes/1024/1024,
		"cpu_percent", snap.CPUPercent,
		"status", snap.Status,
		"goroutines", snap.Goroutines,
		"alloc_mb", snap.AllocMemMb,
		"num_gc", snap.NumGC,
	)
}
