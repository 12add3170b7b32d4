// Package panel implements the panel-style resource monitor TUI using
// BubbleTea: a compact metrics line refreshed once per tick, sparkline
// history, and sensor selection via the in-panel menu or the external
// picker bridge.
package panel

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goujonmael/resmon/internal/history"
	"github.com/goujonmael/resmon/internal/picker"
	"github.com/goujonmael/resmon/internal/prefs"
	"github.com/goujonmael/resmon/internal/sampler"
	"github.com/goujonmael/resmon/internal/sensor"
	"github.com/goujonmael/resmon/internal/store"
)

const historySize = 600 // 10 minutes at 1s interval

// ── Messages ─────────────────────────────────────────────────────────

type tickMsg time.Time

type sampleMsg struct {
	snap     sampler.Snapshot
	readings []sensor.Reading
	time     time.Time
}

// ── Options ──────────────────────────────────────────────────────────

// Options configures the panel model.
type Options struct {
	Interval time.Duration
	WarnTemp float64
	CritTemp float64
	// Recorder, when non-nil, receives every snapshot.
	Recorder *store.DiskStore
}

// ── Model ────────────────────────────────────────────────────────────

// Model is the BubbleTea model for the panel.
type Model struct {
	smp    *sampler.Sampler
	bridge *picker.Bridge
	store  prefs.Store
	opts   Options

	snap      sampler.Snapshot
	readings  []sensor.Reading
	tempHist  *history.Series
	usageHist *history.Series

	menu     list.Model
	menuOpen bool

	err       error
	width     int
	height    int
	lastTick  time.Time
	startTime time.Time
	paused    bool
}

type keyMap struct {
	Quit   key.Binding
	Picker key.Binding
	Menu   key.Binding
	Pause  key.Binding
	Select key.Binding
	Close  key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Picker: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "picker"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "sensors"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "m"),
		key.WithHelp("esc", "close"),
	),
}

// New creates the initial panel model.
func New(smp *sampler.Sampler, bridge *picker.Bridge, prefStore prefs.Store, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.WarnTemp <= 0 {
		opts.WarnTemp = 80
	}
	if opts.CritTemp <= opts.WarnTemp {
		opts.CritTemp = opts.WarnTemp + 15
	}
	return Model{
		smp:       smp,
		bridge:    bridge,
		store:     prefStore,
		opts:      opts,
		tempHist:  history.NewSeries(historySize),
		usageHist: history.NewSeries(historySize),
		startTime: time.Now(),
	}
}

// ── Commands ─────────────────────────────────────────────────────────

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// pollCmd samples off the render path. Ticks arrive one at a time, so the
// sampler is never entered concurrently.
func (m Model) pollCmd() tea.Cmd {
	smp := m.smp
	return func() tea.Msg {
		snap := smp.Sample()
		return sampleMsg{snap: snap, readings: smp.Readings(), time: time.Now()}
	}
}

// ── Init / Update ────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), m.tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if m.menuOpen {
			return m.updateMenu(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit):
			if m.opts.Recorder != nil {
				m.opts.Recorder.Close()
			}
			return m, tea.Quit
		case key.Matches(msg, keys.Picker):
			// Fire-and-forget; the selection lands in the preference
			// file and the next tick picks it up.
			m.bridge.Open(m.readings)
		case key.Matches(msg, keys.Menu):
			m.openMenu()
		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.menuOpen {
			m.menu.SetSize(msg.Width, m.menuHeight())
		}

	case tickMsg:
		if m.paused {
			return m, m.tickCmd()
		}
		return m, tea.Batch(m.pollCmd(), m.tickCmd())

	case sampleMsg:
		m.snap = msg.snap
		m.readings = msg.readings
		m.lastTick = msg.time
		m.tempHist.Push(msg.snap.CPUTempCelsius, msg.time)
		m.usageHist.Push(msg.snap.CPUUsagePercent, msg.time)

		if m.opts.Recorder != nil {
			if err := m.opts.Recorder.Write(msg.snap, msg.time); err != nil {
				m.err = fmt.Errorf("record: %w", err)
			}
		}
	}

	return m, nil
}

// ── Sensor menu ──────────────────────────────────────────────────────

type sensorItem struct {
	entry sensor.Classified
}

func (i sensorItem) Title() string {
	return fmt.Sprintf("%s — %.1f °C", i.entry.Label, i.entry.Temp)
}

func (i sensorItem) Description() string {
	return string(i.entry.Category)
}

func (i sensorItem) FilterValue() string {
	return i.entry.Label + " " + string(i.entry.Category)
}

func (m *Model) openMenu() {
	entries := sensor.ClassifyAll(m.readings)
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = sensorItem{entry: e}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorTitleFg).
		BorderForeground(colorBorder)

	l := list.New(items, delegate, m.width, m.menuHeight())
	l.Title = "Select temperature sensor"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Foreground(colorTitleFg).Bold(true)

	m.menu = l
	m.menuOpen = true
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter input is active the list consumes every key.
	if m.menu.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, keys.Select):
			if item, ok := m.menu.SelectedItem().(sensorItem); ok {
				// Same effect as the external picker: persist and let
				// the next tick pick it up.
				_ = m.store.Save(item.entry.Label)
			}
			m.menuOpen = false
			return m, nil
		case key.Matches(msg, keys.Close):
			m.menuOpen = false
			return m, nil
		case key.Matches(msg, keys.Quit):
			if m.opts.Recorder != nil {
				m.opts.Recorder.Close()
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) menuHeight() int {
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}
