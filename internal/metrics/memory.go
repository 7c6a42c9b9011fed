package metrics

import "runtime"

// MemorySnapshot holds a point-in-time reading of the wrapper's own memory.
type MemorySnapshot struct {
	HeapAlloc uint64 // bytes in use
	Sys       uint64 // total bytes obtained from the OS
	NumGC     uint32 // completed GC cycles
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc: m.HeapAlloc,
		Sys:       m.Sys,
		NumGC:     m.NumGC,
	}
}
