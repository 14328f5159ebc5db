// SPDX-License-Identifier: MIT

// Package hostinfo describes the machine a benchmark runs on, for the
// experiment start log line.
package hostinfo

import (
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Info is a snapshot of the host.
type Info struct {
	Hostname   string
	GOOS       string
	GOARCH     string
	GoVersion  string
	NumCPU     int
	GOMAXPROCS int
	Features   []string // SIMD features relevant to dense kernels
}

// Collect gathers the snapshot. Hostname errors are tolerated.
func Collect() Info {
	host, _ := os.Hostname()

	return Info{
		Hostname:   host,
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   features(),
	}
}

// features lists the detected vector extensions for the current GOARCH.
func features() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasFPHP, "fphp")
		add(cpu.ARM64.HasSVE, "sve")
	}

	return out
}

// LogValue renders Info as a slog group.
func (i Info) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", i.Hostname),
		slog.String("os", i.GOOS),
		slog.String("arch", i.GOARCH),
		slog.String("go", i.GoVersion),
		slog.Int("cpus", i.NumCPU),
		slog.Int("gomaxprocs", i.GOMAXPROCS),
		slog.Any("features", i.Features),
	)
}
