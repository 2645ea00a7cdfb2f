package wm

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// ErrInvalidSnapshot is returned by Restore for a snapshot that breaks the
// manager's invariants.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the restorable state of a manager.
type Snapshot struct {
	Windows    []model.Window `json:"windows"`
	NextZIndex int            `json:"next_z_index"`
}

// Snapshot returns the current windows and z-index counter.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Windows:    slices.Clone(m.windows),
		NextZIndex: m.nextZIndex,
	}
}

// Restore replaces every window with the snapshot's, ordered by z-index. The
// z-index counter is never moved backwards, and always ends above every
// restored window.
func (m *Manager) Restore(s Snapshot) error {
	seenKinds := make(map[model.Kind]bool, len(s.Windows))
	seenIDs := make(map[string]bool, len(s.Windows))
	seenZ := make(map[int]bool, len(s.Windows))
	maxZ := 0
	for _, w := range s.Windows {
		switch {
		case !w.Kind.Valid():
			return fmt.Errorf("%w: window %s has unknown kind %q", ErrInvalidSnapshot, w.ID, w.Kind)
		case w.Kind.External():
			return fmt.Errorf("%w: %s never has a window", ErrInvalidSnapshot, w.Kind)
		case w.ID == "":
			return fmt.Errorf("%w: %s window has no id", ErrInvalidSnapshot, w.Kind)
		case seenKinds[w.Kind]:
			return fmt.Errorf("%w: more than one %s window", ErrInvalidSnapshot, w.Kind)
		case seenIDs[w.ID]:
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidSnapshot, w.ID)
		case seenZ[w.ZIndex]:
			return fmt.Errorf("%w: duplicate z-index %d", ErrInvalidSnapshot, w.ZIndex)
		}
		seenKinds[w.Kind] = true
		seenIDs[w.ID] = true
		seenZ[w.ZIndex] = true
		maxZ = max(maxZ, w.ZIndex)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.windows = slices.Clone(s.Windows)
	if m.windows == nil {
		m.windows = make([]model.Window, 0)
	}
	sort.SliceStable(m.windows, func(i, j int) bool {
		return m.windows[i].ZIndex < m.windows[j].ZIndex
	})
	m.nextZIndex = max(m.nextZIndex, s.NextZIndex, maxZ+1)

	m.logger.Debug("desktop restored", "windows", len(m.windows), "next_z", m.nextZIndex)
	for _, w := range m.windows {
		m.notify(ChangeEvent{Type: ChangeOpen, WindowID: w.ID, Kind: w.Kind})
	}
	return nil
}
