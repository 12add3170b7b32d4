// Package chart renders the panel sparklines with color-coded warn/crit
// thresholds and minute tick marks.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goujonmael/resmon/internal/history"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// HeatColor returns the color for a value against warn/crit thresholds.
func HeatColor(v, warn, crit float64) lipgloss.Color {
	switch {
	case v >= crit:
		return lipgloss.Color("196") // red
	case v >= warn:
		return lipgloss.Color("208") // orange
	case v >= warn*0.85:
		return lipgloss.Color("220") // yellow
	default:
		return lipgloss.Color("78") // soft green
	}
}

// RenderSparkline renders a series as colored block characters, with a
// subtle pipe at each minute boundary. Missing leading samples are padded
// with dashes so the chart stays right-aligned.
func RenderSparkline(points []history.Point, width int, rangeMin, rangeMax, warn, crit float64) string {
	if width <= 0 {
		return ""
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	if len(points) == 0 {
		return dim.Render(strings.Repeat("╌", width))
	}

	if len(points) > width {
		points = points[len(points)-width:]
	}

	padLen := width - len(points)
	span := rangeMax - rangeMin
	if span <= 0 {
		span = 1
	}

	var sb strings.Builder
	for i := 0; i < padLen; i++ {
		sb.WriteString(dim.Render("╌"))
	}

	tickStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))

	for i, p := range points {
		norm := (p.Value - rangeMin) / span
		norm = math.Max(0, math.Min(1, norm))

		idx := int(norm * 7)
		if idx > 7 {
			idx = 7
		}

		if isMinuteTick(points, i) {
			sb.WriteString(tickStyle.Render("│"))
			continue
		}

		style := lipgloss.NewStyle().Foreground(HeatColor(p.Value, warn, crit))
		if p.Value >= crit {
			style = style.Bold(true)
		}
		sb.WriteString(style.Render(string(sparkBlocks[idx])))
	}

	return sb.String()
}

func isMinuteTick(points []history.Point, i int) bool {
	p := points[i]
	if p.Time.IsZero() {
		return false
	}
	if p.Time.Second() == 0 {
		return true
	}
	if i > 0 && !points[i-1].Time.IsZero() {
		return p.Time.Minute() != points[i-1].Time.Minute()
	}
	return false
}

// RenderValue renders a metric value with heat coloring, e.g. "55.2 °C".
func RenderValue(format string, v, warn, crit float64) string {
	s := fmt.Sprintf(format, v)
	style := lipgloss.NewStyle().Foreground(HeatColor(v, warn, crit))
	if v >= crit {
		style = style.Bold(true)
	}
	return style.Render(s)
}
