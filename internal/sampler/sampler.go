// Package sampler produces the per-tick metrics snapshot shown in the
// panel: CPU usage, average CPU frequency, CPU temperature, and RAM usage.
package sampler

import (
	"strings"

	"github.com/goujonmael/resmon/internal/prefs"
	"github.com/goujonmael/resmon/internal/sensor"
	"github.com/goujonmael/resmon/internal/sysinfo"
)

// DefaultSensorLabel is the CPU temperature sensor used when the user has
// not recorded a preference.
const DefaultSensorLabel = "k10temp-pci-00c3"

// Snapshot holds the four panel metrics. The sampler overwrites it
// wholesale on every tick; no smoothing or history is applied here.
type Snapshot struct {
	CPUUsagePercent float64 `json:"cpu_usage_percent"`
	AvgFreqMHz      uint64  `json:"avg_freq_mhz"`
	CPUTempCelsius  float64 `json:"cpu_temp_celsius"`
	RAMUsagePercent float64 `json:"ram_usage_percent"`
}

// Config tunes a Sampler. Zero values select the production defaults.
type Config struct {
	// DefaultLabel is the preferred sensor when no preference is stored.
	DefaultLabel string
	// TopologyDir is the per-core CPU sysfs tree (scaling_cur_freq).
	TopologyDir string
	// CPUInfoPath is the cpuinfo pseudo-file used as the last frequency
	// fallback before the provider average.
	CPUInfoPath string
}

// Sampler reads all metrics from an injected provider once per tick. It is
// not safe for concurrent use; the panel's update loop owns it and invokes
// Sample sequentially.
type Sampler struct {
	provider     sysinfo.Provider
	store        prefs.Store
	defaultLabel string
	topologyDir  string
	cpuInfoPath  string

	snap     Snapshot
	readings []sensor.Reading
}

// New creates a sampler over the given provider and preference store.
func New(provider sysinfo.Provider, store prefs.Store, cfg Config) *Sampler {
	if cfg.DefaultLabel == "" {
		cfg.DefaultLabel = DefaultSensorLabel
	}
	if cfg.TopologyDir == "" {
		cfg.TopologyDir = sysinfo.DefaultCPUTopologyDir
	}
	if cfg.CPUInfoPath == "" {
		cfg.CPUInfoPath = sysinfo.DefaultCPUInfoPath
	}
	return &Sampler{
		provider:     provider,
		store:        store,
		defaultLabel: cfg.DefaultLabel,
		topologyDir:  cfg.TopologyDir,
		cpuInfoPath:  cfg.CPUInfoPath,
	}
}

// Sample refreshes every metric and returns the updated snapshot. A failed
// or missing source degrades that one metric; it never aborts the pass.
func (s *Sampler) Sample() Snapshot {
	s.sampleCPU()
	s.sampleTemperature()
	s.sampleRAM()
	return s.snap
}

// Snapshot returns the most recent snapshot without resampling.
func (s *Sampler) Snapshot() Snapshot {
	return s.snap
}

// Readings returns the sensor list seen on the last pass, for the picker
// and the in-panel sensor menu.
func (s *Sampler) Readings() []sensor.Reading {
	return s.readings
}

func (s *Sampler) sampleCPU() {
	percents, err := s.provider.CPUPercents()
	if err != nil || len(percents) == 0 {
		s.snap.CPUUsagePercent = 0
	} else {
		var sum float64
		for _, p := range percents {
			sum += p
		}
		s.snap.CPUUsagePercent = sum / float64(len(percents))
	}

	freqs, err := s.provider.CPUFreqsMHz()
	if err != nil || len(freqs) == 0 {
		s.snap.AvgFreqMHz = 0
	} else {
		var sum float64
		for _, f := range freqs {
			sum += f
		}
		s.snap.AvgFreqMHz = uint64(sum / float64(len(freqs)))
	}

	// Prefer the live sysfs frequency, then cpuinfo, over the provider
	// average: the provider commonly reports the base clock only.
	if mhz, ok := sysinfo.SysfsFreqMHz(s.topologyDir); ok {
		s.snap.AvgFreqMHz = mhz
	} else if mhz, ok := sysinfo.ProcCPUInfoMHz(s.cpuInfoPath); ok {
		s.snap.AvgFreqMHz = mhz
	}
}

func (s *Sampler) sampleTemperature() {
	readings, err := s.provider.Temperatures()
	if err != nil {
		readings = nil
	}
	s.readings = readings

	// Reload the preference every tick so an external picker's write takes
	// effect on the next sample.
	preferred := s.defaultLabel
	if label, ok := s.store.Load(); ok {
		preferred = label
	}

	for _, r := range readings {
		if strings.EqualFold(r.Label, preferred) {
			s.snap.CPUTempCelsius = r.Temp
			return
		}
	}

	var sum float64
	var n int
	for _, r := range readings {
		l := strings.ToLower(r.Label)
		if strings.Contains(l, "cpu") || strings.Contains(l, "package") {
			sum += r.Temp
			n++
		}
	}
	if n > 0 {
		s.snap.CPUTempCelsius = sum / float64(n)
		return
	}

	if len(readings) > 0 {
		max := readings[0].Temp
		for _, r := range readings[1:] {
			if r.Temp > max {
				max = r.Temp
			}
		}
		s.snap.CPUTempCelsius = max
		return
	}

	s.snap.CPUTempCelsius = 0
}

func (s *Sampler) sampleRAM() {
	m, err := s.provider.Memory()
	if err != nil || m.Total == 0 {
		s.snap.RAMUsagePercent = 0
		return
	}
	s.snap.RAMUsagePercent = float64(m.Used) / float64(m.Total) * 100
}
