package sysinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCoreFreq(t *testing.T, dir, core, value string) {
	t.Helper()
	freqDir := filepath.Join(dir, core, "cpufreq")
	if err := os.MkdirAll(freqDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(freqDir, "scaling_cur_freq"), []byte(value), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestSysfsFreqMHz(t *testing.T) {
	dir := t.TempDir()
	writeCoreFreq(t, dir, "cpu0", "3000000\n")
	writeCoreFreq(t, dir, "cpu1", "3200000\n")

	// Non-core entries must be ignored.
	if err := os.MkdirAll(filepath.Join(dir, "cpufreq"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "cpuidle"), 0755); err != nil {
		t.Fatal(err)
	}

	mhz, ok := SysfsFreqMHz(dir)
	if !ok {
		t.Fatal("expected a reading")
	}
	if mhz != 3100 {
		t.Errorf("got %d MHz, want 3100", mhz)
	}
}

func TestSysfsFreqMHzSkipsBadValues(t *testing.T) {
	dir := t.TempDir()
	writeCoreFreq(t, dir, "cpu0", "garbage")
	writeCoreFreq(t, dir, "cpu1", "2400000")

	mhz, ok := SysfsFreqMHz(dir)
	if !ok {
		t.Fatal("expected a reading from the one parseable core")
	}
	if mhz != 2400 {
		t.Errorf("got %d MHz, want 2400", mhz)
	}
}

func TestSysfsFreqMHzMissingDir(t *testing.T) {
	if _, ok := SysfsFreqMHz(filepath.Join(t.TempDir(), "nope")); ok {
		t.Error("expected no reading for a missing topology dir")
	}
}

func TestProcCPUInfoMHz(t *testing.T) {
	content := `processor	: 0
model name	: Example CPU
cpu MHz		: 2600.00
processor	: 1
model name	: Example CPU
cpu MHz		: 2700.00
`
	path := filepath.Join(t.TempDir(), "cpuinfo")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	mhz, ok := ProcCPUInfoMHz(path)
	if !ok {
		t.Fatal("expected a reading")
	}
	if mhz != 2650 {
		t.Errorf("got %d MHz, want 2650", mhz)
	}
}

func TestProcCPUInfoMHzNoFreqLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpuinfo")
	if err := os.WriteFile(path, []byte("processor : 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := ProcCPUInfoMHz(path); ok {
		t.Error("expected no reading when no cpu MHz lines exist")
	}
}

func TestProcCPUInfoMHzMissingFile(t *testing.T) {
	if _, ok := ProcCPUInfoMHz(filepath.Join(t.TempDir(), "nope")); ok {
		t.Error("expected no reading for a missing file")
	}
}
