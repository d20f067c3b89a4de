// Package sysmon samples host-wide CPU and memory usage for the
// monitoring dashboard.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one host-level usage snapshot. Both fields are percentages
// in the range [0, 100].
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// Sample reads current host CPU and memory utilization. A failing probe
// leaves the corresponding field at zero rather than returning an error;
// the dashboard treats zero as "no data".
func Sample() Stats {
	return Stats{
		CPUPercent: cpuPercent(),
		MemPercent: memPercent(),
	}
}

// cpuPercent returns utilization since the previous call (interval 0 asks
// gopsutil for the delta against its last reading).
func cpuPercent() float64 {
	pcts, err := cpu.Percent(0, false)
	if err != nil || len(pcts) == 0 {
		return 0
	}
	return clampPercent(pcts[0])
}

func memPercent() float64 {
	vmem, err := mem.VirtualMemory()
	if err != nil || vmem == nil {
		return 0
	}
	return clampPercent(vmem.UsedPercent)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
