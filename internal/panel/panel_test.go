package panel

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goujonmael/resmon/internal/picker"
	"github.com/goujonmael/resmon/internal/prefs"
	"github.com/goujonmael/resmon/internal/sampler"
	"github.com/goujonmael/resmon/internal/sensor"
	"github.com/goujonmael/resmon/internal/sysinfo"
)

type fakeProvider struct {
	readings []sensor.Reading
}

func (f fakeProvider) CPUPercents() ([]float64, error) { return []float64{20, 40}, nil }

func (f fakeProvider) CPUFreqsMHz() ([]float64, error) { return []float64{2400, 2400}, nil }

func (f fakeProvider) Temperatures() ([]sensor.Reading, error) { return f.readings, nil }

func (f fakeProvider) Memory() (sysinfo.MemStat, error) {
	return sysinfo.MemStat{Used: 4, Total: 16}, nil
}

func newTestModel(t *testing.T, readings []sensor.Reading) (Model, *prefs.MemStore) {
	t.Helper()
	store := &prefs.MemStore{}
	smp := sampler.New(fakeProvider{readings: readings}, store, sampler.Config{
		TopologyDir: t.TempDir(),
		CPUInfoPath: filepath.Join(t.TempDir(), "cpuinfo"),
	})
	bridge := picker.New(store)
	return New(smp, bridge, store, Options{Interval: time.Second}), store
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSampleMsgUpdatesSnapshotAndHistory(t *testing.T) {
	m, _ := newTestModel(t, nil)

	snap := sampler.Snapshot{
		CPUUsagePercent: 30,
		AvgFreqMHz:      2400,
		CPUTempCelsius:  55.2,
		RAMUsagePercent: 25,
	}
	now := time.Now()
	updated, _ := m.Update(sampleMsg{snap: snap, time: now})
	m = updated.(Model)

	assert.Equal(t, snap, m.snap)
	assert.Equal(t, 55.2, m.tempHist.Last())
	assert.Equal(t, 30.0, m.usageHist.Last())

	view := m.View()
	assert.Contains(t, view, "55.2 °C")
	assert.Contains(t, view, "2400 MHz")
}

func TestPauseToggle(t *testing.T) {
	m, _ := newTestModel(t, nil)

	updated, _ := m.Update(keyMsg('p'))
	m = updated.(Model)
	assert.True(t, m.paused)
	assert.Contains(t, m.View(), "PAUSED")

	updated, _ = m.Update(keyMsg('p'))
	m = updated.(Model)
	assert.False(t, m.paused)
}

func TestMenuSelectSavesPreference(t *testing.T) {
	readings := []sensor.Reading{
		{Label: "fan1", Temp: 0},
		{Label: "CPU Package", Temp: 48},
	}
	m, store := newTestModel(t, readings)
	m.readings = readings

	updated, _ := m.Update(keyMsg('m'))
	m = updated.(Model)
	require.True(t, m.menuOpen)

	// First entry after classification sorts into the CPU category.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.False(t, m.menuOpen)

	label, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "CPU Package", label)
}

func TestMenuEscCloses(t *testing.T) {
	m, store := newTestModel(t, []sensor.Reading{{Label: "Tctl", Temp: 50}})
	m.readings = []sensor.Reading{{Label: "Tctl", Temp: 50}}

	updated, _ := m.Update(keyMsg('m'))
	m = updated.(Model)
	require.True(t, m.menuOpen)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	assert.False(t, m.menuOpen)

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(keyMsg('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
