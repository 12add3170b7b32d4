package picker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goujonmael/resmon/internal/prefs"
	"github.com/goujonmael/resmon/internal/sensor"
)

// scriptedRunner fakes the external tools: each named tool maps to a
// scripted result. Tools not in the map are reported unavailable.
type scriptedRunner struct {
	results map[string]string
	errs    map[string]error
	calls   []string
	lines   []string
}

func (r *scriptedRunner) Run(tool Tool, lines []string) (string, error) {
	r.calls = append(r.calls, tool.Name)
	r.lines = lines
	if err, ok := r.errs[tool.Name]; ok {
		return "", err
	}
	sel, ok := r.results[tool.Name]
	if !ok {
		return "", ErrToolUnavailable
	}
	return sel, nil
}

func TestFormatEntry(t *testing.T) {
	got := FormatEntry(sensor.Classified{
		Category: sensor.CategoryCPU,
		Label:    "k10temp-pci-00c3",
		Temp:     55.25,
	})
	assert.Equal(t, "CPU — k10temp-pci-00c3 — 55.2 °C", got)
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"CPU — k10temp-pci-00c3 — 55.2 °C", "k10temp-pci-00c3"},
		{"Ambient — acpitz — 41.0 °C", "acpitz"},
		{"  CPU — Tctl — 60.0 °C \n", "Tctl"},
		// Malformed output: the whole line is taken as the label.
		{"just-a-label", "just-a-label"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSelection(tt.line), "line %q", tt.line)
	}
}

func TestPickAndSavePersistsSelection(t *testing.T) {
	store := prefs.NewMemStore()
	runner := &scriptedRunner{results: map[string]string{
		"rofi": "CPU — k10temp-pci-00c3 — 55.2 °C",
	}}

	b := New(store).WithRunner(runner)
	entries := sensor.ClassifyAll([]sensor.Reading{
		{Label: "k10temp-pci-00c3", Temp: 55.2},
		{Label: "acpitz", Temp: 41},
	})

	require.True(t, b.PickAndSave(entries))

	label, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "k10temp-pci-00c3", label)

	// Entries were offered sorted by (category, label).
	require.Len(t, runner.lines, 2)
	assert.Equal(t, "Ambient — acpitz — 41.0 °C", runner.lines[0])
	assert.Equal(t, "CPU — k10temp-pci-00c3 — 55.2 °C", runner.lines[1])
}

func TestPickAndSaveFallsBackToSecondTool(t *testing.T) {
	store := prefs.NewMemStore()
	runner := &scriptedRunner{results: map[string]string{
		"zenity": "Ambient — acpitz — 41.0 °C",
	}}

	b := New(store).WithRunner(runner)
	ok := b.PickAndSave(sensor.ClassifyAll([]sensor.Reading{{Label: "acpitz", Temp: 41}}))

	require.True(t, ok)
	assert.Equal(t, []string{"rofi", "zenity"}, runner.calls)

	label, loaded := store.Load()
	require.True(t, loaded)
	assert.Equal(t, "acpitz", label)
}

func TestPickAndSaveEmptySelectionLeavesPreference(t *testing.T) {
	store := prefs.NewMemStore()
	require.NoError(t, store.Save("previous"))

	runner := &scriptedRunner{results: map[string]string{"rofi": ""}}
	b := New(store).WithRunner(runner)

	assert.False(t, b.PickAndSave(nil))

	// The primary tool ran; the fallback must not be tried afterwards.
	assert.Equal(t, []string{"rofi"}, runner.calls)

	label, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "previous", label)
}

func TestPickAndSaveNoToolsAvailable(t *testing.T) {
	store := prefs.NewMemStore()
	runner := &scriptedRunner{}
	b := New(store).WithRunner(runner)

	assert.False(t, b.PickAndSave(nil))
	assert.Equal(t, []string{"rofi", "zenity"}, runner.calls)

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestPickAndSaveToolFailure(t *testing.T) {
	store := prefs.NewMemStore()
	runner := &scriptedRunner{errs: map[string]error{"rofi": errors.New("boom")}}
	b := New(store).WithRunner(runner)

	assert.False(t, b.PickAndSave(nil))
	// A hard failure of a started tool stops the chain.
	assert.Equal(t, []string{"rofi"}, runner.calls)
}

func TestToolByName(t *testing.T) {
	tool, ok := ToolByName("zenity")
	require.True(t, ok)
	assert.False(t, tool.Stdin)

	_, ok = ToolByName("dmenu")
	assert.False(t, ok)
}
