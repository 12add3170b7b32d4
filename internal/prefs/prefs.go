// Package prefs persists the user's selected temperature sensor label.
// The preference is a single-line plain-text file; writers overwrite it
// wholesale and the last write wins.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	appDirName = "resmon"
	fileName   = "selected_sensor.txt"
)

// Store loads and saves the selected sensor label.
type Store interface {
	// Load returns the persisted label. ok is false when no preference
	// is recorded or persistence is unavailable.
	Load() (label string, ok bool)
	// Save persists the label, replacing any previous value.
	Save(label string) error
}

// FileStore persists the preference under the XDG config directory:
// $XDG_CONFIG_HOME/resmon/selected_sensor.txt, falling back to
// $HOME/.config/resmon/selected_sensor.txt. When neither variable is set
// the store silently degrades: Load reports no preference and Save is a
// no-op.
type FileStore struct{}

// NewFileStore returns the default on-disk preference store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Path returns the preference file location, or false when no config
// directory can be resolved from the environment.
func (s *FileStore) Path() (string, bool) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName, fileName), true
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", appDirName, fileName), true
	}
	return "", false
}

func (s *FileStore) Load() (string, bool) {
	path, ok := s.Path()
	if !ok {
		return "", false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	label := strings.TrimSpace(string(b))
	if label == "" {
		return "", false
	}
	return label, true
}

func (s *FileStore) Save(label string) error {
	path, ok := s.Path()
	if !ok {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(label), 0644); err != nil {
		return fmt.Errorf("write preference: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and for the degraded mode where
// a caller wants selections to survive within the process only. Safe for
// concurrent use; the picker bridge writes from its own goroutine.
type MemStore struct {
	mu    sync.Mutex
	label string
	set   bool
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label, s.set
}

func (s *MemStore) Save(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.label = label
	s.set = true
	return nil
}
