package panel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/goujonmael/resmon/internal/chart"
)

const (
	colorTitleFg = lipgloss.Color("230")
	colorTitleBg = lipgloss.Color("62")
	colorBorder  = lipgloss.Color("62")
	colorDim     = lipgloss.Color("241")
	colorLabel   = lipgloss.Color("117")
	colorErr     = lipgloss.Color("196") // matches the sparkline crit color
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorTitleFg).
			Background(colorTitleBg).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errStyle = lipgloss.NewStyle().
			Foreground(colorErr)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

func (m Model) View() string {
	if m.menuOpen {
		return m.menu.View()
	}

	var b strings.Builder

	title := titleStyle.Render("resmon")
	clock := dimStyle.Render(m.lastTick.Format("15:04:05"))
	status := ""
	if m.paused {
		status = " " + errStyle.Render("PAUSED")
	}
	if m.opts.Recorder != nil {
		status += " " + dimStyle.Render("REC "+m.opts.Recorder.Dir())
	}
	b.WriteString(title + "  " + clock + status + "\n\n")

	b.WriteString(panelStyle.Render(m.statusLine()) + "\n\n")

	width := m.sparkWidth()
	b.WriteString(labelStyle.Render("temp ") +
		chart.RenderSparkline(m.tempHist.LastN(width), width, 20, m.opts.CritTemp+10, m.opts.WarnTemp, m.opts.CritTemp) + "\n")
	b.WriteString(labelStyle.Render("cpu  ") +
		chart.RenderSparkline(m.usageHist.LastN(width), width, 0, 100, 80, 95) + "\n")

	if m.err != nil {
		b.WriteString("\n" + errStyle.Render("error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + m.footer())
	return b.String()
}

// statusLine is the compact panel text, one reading per metric.
func (m Model) statusLine() string {
	usage := chart.RenderValue("%.1f%%", m.snap.CPUUsagePercent, 80, 95)
	freq := fmt.Sprintf("%d MHz", m.snap.AvgFreqMHz)
	temp := chart.RenderValue("%.1f °C", m.snap.CPUTempCelsius, m.opts.WarnTemp, m.opts.CritTemp)
	ram := chart.RenderValue("%.1f%%", m.snap.RAMUsagePercent, 80, 95)

	return strings.Join([]string{
		labelStyle.Render("CPU") + " " + usage,
		freq,
		temp,
		labelStyle.Render("RAM") + " " + ram,
	}, "  ")
}

func (m Model) footer() string {
	parts := []string{
		"q quit",
		"s picker",
		"m sensors",
		"p pause",
	}
	up := time.Since(m.startTime).Truncate(time.Second)
	return dimStyle.Render(strings.Join(parts, " · ") + "   up " + up.String())
}

func (m Model) sparkWidth() int {
	w := m.width - 8
	if w < 10 {
		w = 60
	}
	if w > historySize {
		w = historySize
	}
	return w
}
