// Package store persists the desktop session between runs.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/wm"
)

const (
	// CurrentSchemaVersion is the current version of the session schema.
	CurrentSchemaVersion = 1
)

// Session is the desktop state saved to session.json.
type Session struct {
	Desktop  wm.Snapshot `json:"desktop"`
	Viewport model.Size  `json:"viewport"`
	SavedAt  int64       `json:"saved_at,omitempty"` // Unix timestamp

	// Version for compatibility
	SchemaVersion int `json:"schema_version"`
}

// sessionFileMutex protects concurrent access to the session file.
var sessionFileMutex sync.RWMutex

// DefaultSession returns an empty session.
func DefaultSession() *Session {
	return &Session{
		SchemaVersion: CurrentSchemaVersion,
	}
}

// LoadSession loads the session from path.
// If the file doesn't exist or is corrupted, returns an empty session.
func LoadSession(path string) (*Session, error) {
	sessionFileMutex.RLock()
	defer sessionFileMutex.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSession(), nil
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSession(), nil
	}

	if s.SchemaVersion == 0 {
		s.SchemaVersion = CurrentSchemaVersion
	}

	return &s, nil
}

// SaveSession saves the session to path, replacing it atomically.
func SaveSession(path string, s *Session) error {
	sessionFileMutex.Lock()
	defer sessionFileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	if s.SchemaVersion == 0 {
		s.SchemaVersion = CurrentSchemaVersion
	}
	s.SavedAt = time.Now().Unix()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	// Write atomically via temp file
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// Capture records the manager's windows and the viewport size.
func Capture(m *wm.Manager, viewport model.Size) *Session {
	return &Session{
		Desktop:       m.Snapshot(),
		Viewport:      viewport,
		SchemaVersion: CurrentSchemaVersion,
	}
}

// Apply restores the session into the manager and viewport. A zero viewport
// in the session leaves vp unchanged.
func (s *Session) Apply(m *wm.Manager, vp *wm.StaticViewport) error {
	if s.Viewport.Width > 0 && s.Viewport.Height > 0 {
		vp.Set(s.Viewport.Width, s.Viewport.Height)
	}
	return m.Restore(s.Desktop)
}
