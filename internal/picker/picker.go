// Package picker bridges sensor selection to an external picker process.
// It formats the discovered sensors, hands them to the first available
// picker tool, parses the user's choice, and persists it as the new sensor
// preference. The whole flow runs off the panel's update loop; its only
// visible effect is the preference write, which the next sampling tick
// picks up.
package picker

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goujonmael/resmon/internal/prefs"
	"github.com/goujonmael/resmon/internal/sensor"
)

// lineSeparator joins the fields of a picker entry. The em-dash separator
// is part of the selection wire format; parsing splits on it verbatim.
const lineSeparator = " — "

// ErrToolUnavailable reports that a picker tool could not be started at
// all, as opposed to running and producing no selection.
var ErrToolUnavailable = errors.New("picker tool unavailable")

// Tool describes one external picker command. When Stdin is true the entry
// list is written to the tool's input stream; otherwise the entries are
// appended to the argument list (zenity style).
type Tool struct {
	Name  string
	Args  []string
	Stdin bool
}

// DefaultTools is the fixed priority order: an interactive filterable list
// first, a graphical list dialog as fallback.
var DefaultTools = []Tool{
	{Name: "rofi", Args: []string{"-dmenu", "-p", "Select sensor"}, Stdin: true},
	{Name: "zenity", Args: []string{"--list", "--column=Sensor"}},
}

// ToolByName returns the default tool definition for a configured name.
func ToolByName(name string) (Tool, bool) {
	for _, t := range DefaultTools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Runner executes one picker tool and returns the user's trimmed
// selection. An empty selection with a nil error means the user made no
// choice; ErrToolUnavailable means the next tool should be tried.
type Runner interface {
	Run(tool Tool, lines []string) (string, error)
}

// FormatEntry renders one selectable line, e.g.
// "CPU — k10temp-pci-00c3 — 55.2 °C".
func FormatEntry(c sensor.Classified) string {
	return fmt.Sprintf("%s%s%s%s%.1f °C", c.Category, lineSeparator, c.Label, lineSeparator, c.Temp)
}

// ParseSelection recovers the raw sensor label from a selected line. A
// malformed line without the separator is treated as the label itself.
func ParseSelection(line string) string {
	sel := strings.TrimSpace(line)
	parts := strings.Split(sel, lineSeparator)
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[1])
	}
	return sel
}

// Bridge wires sensor readings to the external picker and the preference
// store.
type Bridge struct {
	store  prefs.Store
	runner Runner
	tools  []Tool
	log    *zap.SugaredLogger
}

// New creates a bridge using the system command runner and the default
// tool order.
func New(store prefs.Store) *Bridge {
	return &Bridge{
		store:  store,
		runner: execRunner{},
		tools:  DefaultTools,
		log:    zap.NewNop().Sugar(),
	}
}

// WithRunner replaces the command runner (tests use a scripted one).
func (b *Bridge) WithRunner(r Runner) *Bridge {
	b.runner = r
	return b
}

// WithTools replaces the tool priority order.
func (b *Bridge) WithTools(tools []Tool) *Bridge {
	b.tools = tools
	return b
}

// WithLogger attaches a logger for background diagnostics.
func (b *Bridge) WithLogger(log *zap.SugaredLogger) *Bridge {
	b.log = log
	return b
}

// Open fires the selection flow on its own goroutine and returns
// immediately so the caller's update loop keeps ticking. Fire-and-forget:
// there is no cancellation and no callback; a selection surfaces solely
// through the preference store.
func (b *Bridge) Open(readings []sensor.Reading) {
	entries := sensor.ClassifyAll(readings)
	go b.PickAndSave(entries)
}

// PickAndSave runs the picker tools in priority order and persists the
// selected label. It reports whether a selection was saved.
func (b *Bridge) PickAndSave(entries []sensor.Classified) bool {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, FormatEntry(e))
	}

	for _, tool := range b.tools {
		sel, err := b.runner.Run(tool, lines)
		if errors.Is(err, ErrToolUnavailable) {
			continue
		}
		if err != nil {
			b.log.Debugw("picker tool failed", "tool", tool.Name, "error", err)
			return false
		}
		sel = strings.TrimSpace(sel)
		if sel == "" {
			// The tool ran but the user cancelled; leave the
			// preference unchanged.
			return false
		}
		label := ParseSelection(sel)
		if err := b.store.Save(label); err != nil {
			b.log.Warnw("saving sensor preference failed", "label", label, "error", err)
			return false
		}
		b.log.Infow("sensor preference updated", "label", label, "tool", tool.Name)
		return true
	}

	b.log.Debugw("no picker tool available")
	return false
}
