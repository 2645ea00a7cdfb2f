package wm

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// Default layout policy.
const (
	DefaultInitialZIndex = 10
	DefaultGitHubURL     = "https://github.com"
)

var (
	// DefaultStandardSize is the footprint of most kinds.
	DefaultStandardSize = model.Size{Width: 900, Height: 600}
	// DefaultLargeSize is the footprint of kinds where Kind.Large is true.
	DefaultLargeSize = model.Size{Width: 1000, Height: 700}
	// DefaultRestoreSize is the size a window snaps to when leaving maximized.
	DefaultRestoreSize = model.Size{Width: 600, Height: 400}
)

// openTimeout bounds a single external URL open.
const openTimeout = 5 * time.Second

// Options configures the manager's layout policy.
// Zero fields take the package defaults.
type Options struct {
	// InitialZIndex is the first z-index handed out. It sits above any
	// fixed UI layers drawn beneath windows.
	InitialZIndex int
	StandardSize  model.Size
	LargeSize     model.Size
	RestoreSize   model.Size
	// GitHubURL is opened instead of creating a window for the github kind.
	GitHubURL string
	Logger    *slog.Logger
}

// DefaultOptions returns the stock layout policy.
func DefaultOptions() Options {
	return Options{
		InitialZIndex: DefaultInitialZIndex,
		StandardSize:  DefaultStandardSize,
		LargeSize:     DefaultLargeSize,
		RestoreSize:   DefaultRestoreSize,
		GitHubURL:     DefaultGitHubURL,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.InitialZIndex == 0 {
		o.InitialZIndex = d.InitialZIndex
	}
	if o.StandardSize == (model.Size{}) {
		o.StandardSize = d.StandardSize
	}
	if o.LargeSize == (model.Size{}) {
		o.LargeSize = d.LargeSize
	}
	if o.RestoreSize == (model.Size{}) {
		o.RestoreSize = d.RestoreSize
	}
	if o.GitHubURL == "" {
		o.GitHubURL = d.GitHubURL
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Manager owns the set of open windows, their stacking order and layout.
// All mutations go through its methods; readers take snapshots with Windows
// and learn about changes through Subscribe.
//
// Every mutation replaces the window slice rather than editing it, so a
// snapshot handed out earlier is never modified.
type Manager struct {
	mu      sync.Mutex
	opts    Options
	env     Env
	logger  *slog.Logger
	entropy io.Reader

	windows    []model.Window
	nextZIndex int

	subscribers []chan ChangeEvent
	shutdown    bool
}

// New creates a window manager with no open windows.
func New(opts Options, env Env) *Manager {
	opts = opts.withDefaults()
	if env.Viewport == nil {
		env.Viewport = NewStaticViewport(1920, 1080)
	}
	if env.Clock == nil {
		env.Clock = SystemClock{}
	}
	if env.Opener == nil {
		env.Opener = nopOpener{}
	}

	return &Manager{
		opts:       opts,
		env:        env,
		logger:     opts.Logger,
		entropy:    ulid.Monotonic(rand.Reader, 0),
		windows:    make([]model.Window, 0),
		nextZIndex: opts.InitialZIndex,
	}
}

// Options returns the layout policy in effect.
func (m *Manager) Options() Options {
	return m.opts
}

// DefaultSize returns the footprint a new window of kind gets.
func (m *Manager) DefaultSize(kind model.Kind) model.Size {
	if kind.Large() {
		return m.opts.LargeSize
	}
	return m.opts.StandardSize
}

// Open opens the application of the given kind.
//
// For the github kind the configured URL is opened and no window is created.
// If a window of the kind already exists it is focused and, when minimized,
// restored. Otherwise a new window is created centered in the viewport on top
// of every other window. The returned bool is false when no window exists for
// the kind afterwards.
func (m *Manager) Open(kind model.Kind) (model.Window, bool) {
	return m.OpenContext(context.Background(), kind)
}

// OpenContext is Open with a context for the external URL open.
func (m *Manager) OpenContext(ctx context.Context, kind model.Kind) (model.Window, bool) {
	if !kind.Valid() {
		m.logger.Warn("ignoring open of unknown kind", "kind", kind)
		return model.Window{}, false
	}

	if kind.External() {
		m.openExternal(ctx, kind)
		return model.Window{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if idx := m.indexOfKind(kind); idx >= 0 {
		id := m.windows[idx].ID
		m.focusLocked(id)
		if w := m.windows[m.indexOf(id)]; w.Minimized {
			m.toggleMinimizeLocked(id)
		}
		return m.windows[m.indexOf(id)], true
	}

	size := m.DefaultSize(kind)
	now := m.env.Clock.Now()
	w := model.Window{
		ID:       m.newID(kind, now),
		Kind:     kind,
		Position: size.Centered(m.env.Viewport.Size()),
		Size:     size,
		ZIndex:   m.takeZIndex(),
		OpenedAt: now,
	}

	next := make([]model.Window, len(m.windows), len(m.windows)+1)
	copy(next, m.windows)
	m.windows = append(next, w)

	m.logger.Debug("window opened", "id", w.ID, "kind", kind, "z", w.ZIndex)
	m.notify(ChangeEvent{Type: ChangeOpen, WindowID: w.ID, Kind: kind})
	return w, true
}

func (m *Manager) openExternal(ctx context.Context, kind model.Kind) {
	url := m.opts.GitHubURL

	ctx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()
	if err := m.env.Opener.OpenURL(ctx, url); err != nil {
		m.logger.Warn("failed to open external url", "kind", kind, "url", url, "error", err)
	}

	m.mu.Lock()
	m.notify(ChangeEvent{Type: ChangeExternal, Kind: kind})
	m.mu.Unlock()
}

// Focus raises the window to the top of the stack by giving it a fresh
// z-index, even if it is already on top. It returns false if no window has
// the id.
func (m *Manager) Focus(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focusLocked(id)
}

func (m *Manager) focusLocked(id string) bool {
	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}

	next := slices.Clone(m.windows)
	next[idx].ZIndex = m.takeZIndex()
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].ZIndex < next[j].ZIndex
	})
	m.windows = next

	m.notify(ChangeEvent{Type: ChangeFocus, WindowID: id, Kind: next[len(next)-1].Kind})
	return true
}

// Close removes the window permanently. Other windows are untouched.
// It returns false if no window has the id.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}

	kind := m.windows[idx].Kind
	next := make([]model.Window, 0, len(m.windows)-1)
	next = append(next, m.windows[:idx]...)
	next = append(next, m.windows[idx+1:]...)
	m.windows = next

	m.logger.Debug("window closed", "id", id, "kind", kind)
	m.notify(ChangeEvent{Type: ChangeClose, WindowID: id, Kind: kind})
	return true
}

// ToggleMinimize flips the minimized flag. Geometry, z-index and the
// maximized flag are kept. It returns false if no window has the id.
func (m *Manager) ToggleMinimize(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.toggleMinimizeLocked(id)
}

func (m *Manager) toggleMinimizeLocked(id string) bool {
	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}

	next := slices.Clone(m.windows)
	next[idx].Minimized = !next[idx].Minimized
	m.windows = next

	m.notify(ChangeEvent{Type: ChangeMinimize, WindowID: id, Kind: next[idx].Kind})
	return true
}

// ToggleMaximize switches between maximized and restored layout.
//
// Maximizing moves the window to the origin and sizes it to the viewport.
// Restoring does not recall the geometry the window had before maximizing:
// it snaps to the restore size centered in the viewport.
// It returns false if no window has the id.
func (m *Manager) ToggleMaximize(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}

	viewport := m.env.Viewport.Size()
	next := slices.Clone(m.windows)
	w := &next[idx]
	if !w.Maximized {
		w.Maximized = true
		w.Position = model.Point{}
		w.Size = viewport
	} else {
		w.Maximized = false
		w.Size = m.opts.RestoreSize
		w.Position = m.opts.RestoreSize.Centered(viewport)
	}
	m.windows = next

	m.notify(ChangeEvent{Type: ChangeMaximize, WindowID: id, Kind: w.Kind})
	return true
}

// IsRunning reports whether a window of the kind exists and is not minimized.
func (m *Manager) IsRunning(kind model.Kind) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOfKind(kind)
	return idx >= 0 && !m.windows[idx].Minimized
}

// IsMinimized reports whether a window of the kind exists and is minimized.
func (m *Manager) IsMinimized(kind model.Kind) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOfKind(kind)
	return idx >= 0 && m.windows[idx].Minimized
}

// Windows returns a snapshot of the open windows. After any focus the
// snapshot is ordered by ascending z-index.
func (m *Manager) Windows() []model.Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.windows)
}

// Count returns the number of open windows.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.windows)
}

// Get returns the window with the given id.
func (m *Manager) Get(id string) (model.Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return model.Window{}, false
	}
	return m.windows[idx], true
}

// ByKind returns the window of the given kind.
func (m *Manager) ByKind(kind model.Kind) (model.Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOfKind(kind)
	if idx < 0 {
		return model.Window{}, false
	}
	return m.windows[idx], true
}

// Top returns the visible window with the highest z-index.
func (m *Manager) Top() (model.Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var top model.Window
	found := false
	for _, w := range m.windows {
		if w.Minimized {
			continue
		}
		if !found || w.ZIndex > top.ZIndex {
			top = w
			found = true
		}
	}
	return top, found
}

// Resolve finds a window by exact id, then by kind name, then by a unique
// id prefix.
func (m *Manager) Resolve(ref string) (model.Window, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Window{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if idx := m.indexOf(ref); idx >= 0 {
		return m.windows[idx], true
	}
	if kind, err := model.ParseKind(ref); err == nil {
		if idx := m.indexOfKind(kind); idx >= 0 {
			return m.windows[idx], true
		}
		return model.Window{}, false
	}

	var match model.Window
	matches := 0
	for _, w := range m.windows {
		if strings.HasPrefix(w.ID, ref) {
			match = w
			matches++
		}
	}
	if matches != 1 {
		return model.Window{}, false
	}
	return match, true
}

// takeZIndex returns the next z-index and advances the counter.
// Must be called with m.mu held.
func (m *Manager) takeZIndex() int {
	z := m.nextZIndex
	m.nextZIndex++
	return z
}

// newID builds a window id from the kind and a ULID carrying the creation
// time. Must be called with m.mu held.
func (m *Manager) newID(kind model.Kind, now time.Time) string {
	id, err := ulid.New(ulid.Timestamp(now), m.entropy)
	if err != nil {
		id = ulid.Make()
	}
	return string(kind) + "-" + id.String()
}

func (m *Manager) indexOf(id string) int {
	for i, w := range m.windows {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) indexOfKind(kind model.Kind) int {
	for i, w := range m.windows {
		if w.Kind == kind {
			return i
		}
	}
	return -1
}
