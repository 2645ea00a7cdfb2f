package portfolio

import (
	"log/slog"
	"sync"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// Source holds the current portfolio loaded from a file and reloads it on
// request. Readers always see a complete portfolio.
type Source struct {
	path     string
	mu       sync.RWMutex
	current  *model.Portfolio
	onChange []func(*model.Portfolio)
}

// NewSource loads the portfolio at path.
func NewSource(path string) (*Source, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Source{path: path, current: p}, nil
}

// Path returns the file the source reads from.
func (s *Source) Path() string {
	return s.path
}

// Current returns the most recently loaded portfolio.
func (s *Source) Current() *model.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// OnChange registers fn to be called after every successful reload.
func (s *Source) OnChange(fn func(*model.Portfolio)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Reload re-reads the file. On error the previous portfolio is kept.
func (s *Source) Reload() error {
	p, err := Load(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = p
	callbacks := append([]func(*model.Portfolio){}, s.onChange...)
	s.mu.Unlock()

	slog.Debug("portfolio reloaded", "path", s.path, "projects", len(model.ProjectsFrom(p)))
	for _, fn := range callbacks {
		fn(p)
	}
	return nil
}
