// Package sysmon samples system-wide CPU and memory load, so benchmark
// timings can be read against how busy the machine was.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0, averaged since the previous sample
	MemPercent float64 // 0.0 .. 100.0, at sampling time
}

// Sampler takes load snapshots.
type Sampler interface {
	Sample() Stats
}

// HostSampler reads the host's load through gopsutil.
type HostSampler struct{}

// Verify interface compliance.
var _ Sampler = HostSampler{}

// Sample collects a snapshot. CPU uses interval=0, i.e. the busy share since
// the previous call in this process. Fields that cannot be read are zero.
func (HostSampler) Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}
