package metrics

import "runtime"

// MemorySnapshot is one reading of the Go runtime allocator and GC
// counters, taken after an evaluation or on a dashboard tick.
type MemorySnapshot struct {
	HeapAlloc    uint64
	HeapInuse    uint64
	Sys          uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// MemoryCollector samples runtime.MemStats.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads the current allocator state. ReadMemStats stops the
// world briefly, so callers should sample at most a few times per second.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapInuse:    m.HeapInuse,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		NumGoroutine: runtime.NumGoroutine(),
	}
}
