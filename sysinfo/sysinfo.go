// Package sysinfo captures the host parameters stored alongside
// measurement results, so numbers from different machines are never
// compared blindly.
package sysinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type SysInfo struct {
	Arch     string
	Hostname string
	Platform string
	CPUCount int
	CPUFreq  float64
	RAM      float64
}

// HostStat collects best-effort host information; probe failures leave
// zero values instead of aborting a benchmark run.
func HostStat() SysInfo {
	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	info := SysInfo{Arch: runtime.GOARCH}
	if hostStat != nil {
		info.Hostname = hostStat.Hostname
		info.Platform = hostStat.Platform
	}
	if len(cpuStat) > 0 {
		totalFreq := 0.0
		for _, c := range cpuStat {
			totalFreq += c.Mhz
		}
		info.CPUCount = len(cpuStat)
		info.CPUFreq = totalFreq / float64(len(cpuStat)) * 1000
	}
	if vmStat != nil {
		info.RAM = float64(vmStat.Total) / 1024 / 1024 / 1024
	}
	return info
}
