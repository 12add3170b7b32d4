package sensor

import "strings"

// Category is a coarse classification tag assigned to a sensor label for
// display grouping and sort order.
type Category string

const (
	CategoryCPU         Category = "CPU"
	CategoryGPU         Category = "GPU"
	CategorySSD         Category = "SSD"
	CategoryBattery     Category = "Battery"
	CategoryAmbient     Category = "Ambient"
	CategoryMotherboard Category = "Motherboard"
	CategoryEC          Category = "EC"
	CategoryMemory      Category = "Memory"
	CategoryWireless    Category = "Wireless"
	CategoryFan         Category = "Fan"
	CategoryPower       Category = "Power"
	CategoryController  Category = "Controller"
	CategoryOther       Category = "Other"
)

// Classify maps a raw hardware sensor label to a category. Matching is
// case-insensitive substring matching against an ordered list of keyword
// groups; the first group that matches wins. The order is deliberate:
// a label containing both "cpu" and "fan" is a CPU sensor, not a fan.
func Classify(label string) Category {
	l := strings.ToLower(label)

	switch {
	case containsAny(l, "cpu", "package", "pkg", "k10temp", "coretemp", "tctl", "tdie", "core", "cros_ec cpu"):
		return CategoryCPU

	case containsAny(l, "gpu", "amdgpu", "nvidia", "radeon"):
		return CategoryGPU

	case containsAny(l, "nvme", "ssd", "disk", "hdd"):
		return CategorySSD

	case containsAny(l, "battery", "charge"):
		return CategoryBattery

	case containsAny(l, "acpitz", "ambient") ||
		(strings.Contains(l, "temp") && containsAny(l, "ambient", "zone")):
		return CategoryAmbient

	case containsAny(l, "pch", "motherboard", "board", "ec"):
		// "cros_ec" appears for Chromebook embedded-controller sensors.
		if strings.Contains(l, "cros_ec") {
			return CategoryEC
		}
		return CategoryMotherboard

	case containsAny(l, "spd", "dimm", "memory", "dram"):
		return CategoryMemory

	case containsAny(l, "iwl", "wifi", "wlan", "phy", "mt7", "mt79"):
		return CategoryWireless

	case containsAny(l, "fan", "tach"):
		return CategoryFan

	case containsAny(l, "psu", "ac", "power"):
		return CategoryPower

	case containsAny(l, "raid", "md", "controller"):
		return CategoryController

	// Unreachable in practice ("spd" above already matches), kept as a
	// guard in case the memory keyword group is ever renamed.
	case strings.Contains(l, "spd5118"):
		return CategoryMemory
	}

	return CategoryOther
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
