// Package history provides a ring-buffer series tracker with min/peak/avg
// statistics, backing the panel sparklines.
package history

import (
	"math"
	"time"
)

// Point is a single data point in a metric series.
type Point struct {
	Value float64
	Time  time.Time
}

// Series stores a ring buffer of samples for one metric.
type Series struct {
	Points []Point
	Max    int // capacity
	Min    float64
	Peak   float64
}

// NewSeries creates a ring buffer with the given capacity.
func NewSeries(capacity int) *Series {
	return &Series{
		Points: make([]Point, 0, capacity),
		Max:    capacity,
		Min:    math.MaxFloat64,
		Peak:   -math.MaxFloat64,
	}
}

// Push adds a new sample, evicting the oldest once at capacity.
func (s *Series) Push(value float64, t time.Time) {
	p := Point{Value: value, Time: t}
	if len(s.Points) >= s.Max {
		copy(s.Points, s.Points[1:])
		s.Points[len(s.Points)-1] = p
	} else {
		s.Points = append(s.Points, p)
	}

	if value < s.Min {
		s.Min = value
	}
	if value > s.Peak {
		s.Peak = value
	}
}

// Last returns the most recent value, or 0 if empty.
func (s *Series) Last() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Value
}

// Avg returns the average across all stored points.
func (s *Series) Avg() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range s.Points {
		sum += p.Value
	}
	return sum / float64(len(s.Points))
}

// LastN returns the last n points (with timestamps) for chart rendering.
func (s *Series) LastN(n int) []Point {
	if n <= 0 || len(s.Points) == 0 {
		return nil
	}
	start := len(s.Points) - n
	if start < 0 {
		start = 0
	}
	out := make([]Point, len(s.Points[start:]))
	copy(out, s.Points[start:])
	return out
}
