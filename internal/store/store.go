// Package store handles optional CSV recording of metric snapshots with
// daily file rotation. Data is stored in ~/.resmon-data/.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goujonmael/resmon/internal/sampler"
)

const (
	dirName    = ".resmon-data"
	timeLayout = "2006-01-02T15:04:05"
	fileLayout = "2006-01-02"
)

// DiskStore appends one row per tick to a daily CSV file:
//
//	~/.resmon-data/YYYY-MM-DD.csv
//	time,cpu_pct,freq_mhz,temp_c,ram_pct
type DiskStore struct {
	dir     string
	current *os.File
	writer  *csv.Writer
	curDate string
}

// StoredSnapshot is a single row read back from a CSV log file.
type StoredSnapshot struct {
	Time     time.Time
	Snapshot sampler.Snapshot
}

// New creates a disk store rooted at the default data directory.
func New() (*DiskStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot find home dir: %w", err)
	}
	return NewAt(filepath.Join(home, dirName))
}

// NewAt creates a disk store at dir, creating it if needed.
func NewAt(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Write appends a snapshot to today's CSV file, rotating at midnight.
func (d *DiskStore) Write(snap sampler.Snapshot, t time.Time) error {
	dateStr := t.Format(fileLayout)

	if d.curDate != dateStr || d.current == nil {
		d.Close()
		path := filepath.Join(d.dir, dateStr+".csv")
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		d.current = f
		d.writer = csv.NewWriter(f)
		d.curDate = dateStr

		info, _ := f.Stat()
		if info.Size() == 0 {
			d.writer.Write([]string{"time", "cpu_pct", "freq_mhz", "temp_c", "ram_pct"})
		}
	}

	d.writer.Write([]string{
		t.Format(timeLayout),
		fmt.Sprintf("%.1f", snap.CPUUsagePercent),
		strconv.FormatUint(snap.AvgFreqMHz, 10),
		fmt.Sprintf("%.1f", snap.CPUTempCelsius),
		fmt.Sprintf("%.1f", snap.RAMUsagePercent),
	})
	d.writer.Flush()
	return d.writer.Error()
}

// Close flushes and closes the current file.
func (d *DiskStore) Close() {
	if d.writer != nil {
		d.writer.Flush()
	}
	if d.current != nil {
		d.current.Close()
		d.current = nil
	}
}

// Dir returns the directory this store writes to.
func (d *DiskStore) Dir() string {
	return d.dir
}

// DataDir returns the default data directory path.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, dirName)
}

// ListDays returns available log dates in dir (newest first). An empty dir
// selects the default data directory.
func ListDays(dir string) ([]string, error) {
	if dir == "" {
		dir = DataDir()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var days []string
	for i := len(entries) - 1; i >= 0; i-- {
		name := entries[i].Name()
		if strings.HasSuffix(name, ".csv") {
			days = append(days, strings.TrimSuffix(name, ".csv"))
		}
	}
	return days, nil
}

// LoadDay reads all snapshots from one day's CSV file in dir.
func LoadDay(dir, day string) ([]StoredSnapshot, error) {
	if dir == "" {
		dir = DataDir()
	}
	return LoadFile(filepath.Join(dir, day+".csv"))
}

// LoadFile reads all snapshots from a CSV file.
func LoadFile(path string) ([]StoredSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var out []StoredSnapshot
	for i, row := range records {
		if i == 0 && len(row) > 0 && row[0] == "time" {
			continue
		}
		if len(row) < 5 {
			continue
		}

		t, err := time.ParseInLocation(timeLayout, row[0], time.Local)
		if err != nil {
			continue
		}
		cpu, _ := strconv.ParseFloat(row[1], 64)
		freq, _ := strconv.ParseUint(row[2], 10, 64)
		temp, _ := strconv.ParseFloat(row[3], 64)
		ram, _ := strconv.ParseFloat(row[4], 64)

		out = append(out, StoredSnapshot{
			Time: t,
			Snapshot: sampler.Snapshot{
				CPUUsagePercent: cpu,
				AvgFreqMHz:      freq,
				CPUTempCelsius:  temp,
				RAMUsagePercent: ram,
			},
		})
	}

	return out, nil
}
