// Package hostinfo describes the machine a benchmark ran on, so that
// throughput figures from different hosts are not compared blindly.
package hostinfo

import "runtime"

// Info is a snapshot of the host.
type Info struct {
	OS        string
	Arch      string
	CPUs      int
	GoVersion string
	// TotalMemBytes is physical RAM, or 0 when it could not be read.
	TotalMemBytes uint64
}

// MemoryKnown reports whether TotalMemBytes came from the platform.
func (i Info) MemoryKnown() bool {
	return i.TotalMemBytes > 0
}

// Snapshot reads the current host description.
func Snapshot() Info {
	mem, _ := totalMemory()
	return Info{
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		CPUs:          runtime.NumCPU(),
		GoVersion:     runtime.Version(),
		TotalMemBytes: mem,
	}
}
