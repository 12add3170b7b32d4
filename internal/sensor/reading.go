// Package sensor defines hardware temperature readings and the heuristic
// classification of raw sensor labels into coarse display categories.
package sensor

import "sort"

// Reading is a single temperature reading reported by the OS. Readings are
// rebuilt from scratch on every sampling pass and never persisted.
type Reading struct {
	Label string  // raw hardware-reported name, e.g. "k10temp-pci-00c3"
	Temp  float64 // current temperature in Celsius
}

// Classified pairs a reading with its display category. It exists only for
// display grouping and selection ordering.
type Classified struct {
	Category Category
	Label    string
	Temp     float64
}

// ClassifyAll classifies every reading and returns the result sorted by
// (category, label) ascending.
func ClassifyAll(readings []Reading) []Classified {
	out := make([]Classified, 0, len(readings))
	for _, r := range readings {
		out = append(out, Classified{
			Category: Classify(r.Label),
			Label:    r.Label,
			Temp:     r.Temp,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Label < out[j].Label
	})
	return out
}
