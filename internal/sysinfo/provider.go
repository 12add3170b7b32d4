// Package sysinfo reads the OS data sources that back the metric sampler:
// per-core usage and frequency, the hardware temperature component list,
// and memory totals. Everything is advisory; callers degrade on error.
package sysinfo

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/goujonmael/resmon/internal/sensor"
)

// MemStat holds memory usage in bytes.
type MemStat struct {
	Used  uint64
	Total uint64
}

// Provider is the capability interface the sampler consumes. Tests
// substitute a fake; production code uses SystemProvider.
type Provider interface {
	// CPUPercents returns per-core usage percentages since the last call.
	CPUPercents() ([]float64, error)
	// CPUFreqsMHz returns per-core frequencies in MHz.
	CPUFreqsMHz() ([]float64, error)
	// Temperatures returns all currently reported temperature sensors.
	Temperatures() ([]sensor.Reading, error)
	// Memory returns used and total physical memory.
	Memory() (MemStat, error)
}

// SystemProvider reads live system data through gopsutil.
type SystemProvider struct{}

func (SystemProvider) CPUPercents() ([]float64, error) {
	return cpu.Percent(0, true)
}

func (SystemProvider) CPUFreqsMHz() ([]float64, error) {
	infos, err := cpu.Info()
	if err != nil {
		return nil, err
	}
	freqs := make([]float64, 0, len(infos))
	for _, info := range infos {
		freqs = append(freqs, info.Mhz)
	}
	return freqs, nil
}

func (SystemProvider) Temperatures() ([]sensor.Reading, error) {
	temps, err := host.SensorsTemperatures()
	if err != nil {
		return nil, err
	}
	readings := make([]sensor.Reading, 0, len(temps))
	for _, t := range temps {
		readings = append(readings, sensor.Reading{
			Label: t.SensorKey,
			Temp:  t.Temperature,
		})
	}
	return readings, nil
}

func (SystemProvider) Memory() (MemStat, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemStat{}, err
	}
	return MemStat{Used: vm.Used, Total: vm.Total}, nil
}
