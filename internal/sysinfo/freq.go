package sysinfo

import (
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Default locations of the higher-fidelity frequency sources on Linux.
// Both are overridable so tests can point them at fixture trees.
const (
	DefaultCPUTopologyDir = "/sys/devices/system/cpu"
	DefaultCPUInfoPath    = "/proc/cpuinfo"
)

var cpuDirRe = regexp.MustCompile(`^cpu[0-9]+$`)

// SysfsFreqMHz averages scaling_cur_freq across all per-core directories
// (cpu0, cpu1, ...) under the CPU topology dir. Values there are in kHz;
// the average is converted to MHz by integer division. Returns false when
// no core yields a parseable value.
func SysfsFreqMHz(topologyDir string) (uint64, bool) {
	entries, err := os.ReadDir(topologyDir)
	if err != nil {
		return 0, false
	}

	var sum, n uint64
	for _, e := range entries {
		if !cpuDirRe.MatchString(e.Name()) {
			continue
		}
		path := filepath.Join(topologyDir, e.Name(), "cpufreq", "scaling_cur_freq")
		b, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		khz, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
		if err != nil {
			continue
		}
		sum += khz
		n++
	}

	if n == 0 {
		return 0, false
	}
	return sum / n / 1000, true
}

// ProcCPUInfoMHz averages all "cpu MHz" lines from the cpuinfo pseudo-file,
// rounded to the nearest MHz. Unparseable lines are skipped. Returns false
// when the file is unreadable or holds no frequency lines.
func ProcCPUInfoMHz(path string) (uint64, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	var sum float64
	var n int
	for _, line := range strings.Split(string(b), "\n") {
		if !strings.HasPrefix(line, "cpu MHz") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line[idx+1:]), 64)
		if err != nil {
			continue
		}
		sum += v
		n++
	}

	if n == 0 {
		return 0, false
	}
	return uint64(math.Round(sum / float64(n))), true
}
