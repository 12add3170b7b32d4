package server

import (
	"sync"

	"github.com/goujonmael/resmon/internal/sampler"
	"github.com/goujonmael/resmon/internal/sensor"
)

// guardedSource holds the latest sample behind a mutex so HTTP handlers
// never touch the sampler itself.
type guardedSource struct {
	mu       sync.RWMutex
	snap     sampler.Snapshot
	readings []sensor.Reading
}

func newGuardedSource() *guardedSource {
	return &guardedSource{}
}

func (g *guardedSource) update(snap sampler.Snapshot, readings []sensor.Reading) {
	g.mu.Lock()
	g.snap = snap
	g.readings = readings
	g.mu.Unlock()
}

func (g *guardedSource) Snapshot() sampler.Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snap
}

func (g *guardedSource) Readings() []sensor.Reading {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.readings
}
