package wm

import (
	"context"
	"sync"
	"time"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// Viewport reports the current drawable area in pixels.
type Viewport interface {
	Size() model.Size
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// URLOpener navigates to an external URL.
type URLOpener interface {
	OpenURL(ctx context.Context, url string) error
}

// Env bundles the collaborators the manager queries from its surroundings.
// Nil fields fall back to a 1920x1080 static viewport, the system clock and
// an opener that does nothing.
type Env struct {
	Viewport Viewport
	Clock    Clock
	Opener   URLOpener
}

// StaticViewport is a Viewport whose size is set explicitly.
// It is safe for concurrent use.
type StaticViewport struct {
	mu   sync.RWMutex
	size model.Size
}

// NewStaticViewport creates a viewport of the given size.
func NewStaticViewport(width, height int) *StaticViewport {
	return &StaticViewport{size: model.Size{Width: width, Height: height}}
}

// Size returns the current size.
func (v *StaticViewport) Size() model.Size {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.size
}

// Set changes the size. Existing windows are not relaid out; the new size
// applies to the next open or maximize.
func (v *StaticViewport) Set(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.size = model.Size{Width: width, Height: height}
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// URLOpenerFunc adapts a function to URLOpener.
type URLOpenerFunc func(ctx context.Context, url string) error

// OpenURL calls f(ctx, url).
func (f URLOpenerFunc) OpenURL(ctx context.Context, url string) error {
	return f(ctx, url)
}

type nopOpener struct{}

func (nopOpener) OpenURL(context.Context, string) error { return nil }
