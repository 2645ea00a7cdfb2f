package wm

import "github.com/jmylchreest/deskfolio/internal/model"

// ChangeType indicates the kind of window manager change.
type ChangeType int

const (
	// ChangeOpen indicates a window was created.
	ChangeOpen ChangeType = iota
	// ChangeFocus indicates a window was raised to the top.
	ChangeFocus
	// ChangeClose indicates a window was removed.
	ChangeClose
	// ChangeMinimize indicates a window's minimized flag flipped.
	ChangeMinimize
	// ChangeMaximize indicates a window's maximized flag flipped.
	ChangeMaximize
	// ChangeExternal indicates an external kind was opened; no window changed.
	ChangeExternal
)

var changeNames = map[ChangeType]string{
	ChangeOpen:     "open",
	ChangeFocus:    "focus",
	ChangeClose:    "close",
	ChangeMinimize: "minimize",
	ChangeMaximize: "maximize",
	ChangeExternal: "external",
}

func (t ChangeType) String() string {
	if name, ok := changeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ChangeEvent signals a change to the window collection. Receivers pull the
// new state with Manager.Windows.
type ChangeEvent struct {
	Type     ChangeType
	WindowID string
	Kind     model.Kind
}

// subscriberBuffer is the per-subscriber channel capacity.
const subscriberBuffer = 16

// Subscribe returns a channel that receives change events.
func (m *Manager) Subscribe() <-chan ChangeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan ChangeEvent, subscriberBuffer)
	if m.shutdown {
		close(ch)
		return ch
	}
	m.subscribers = append(m.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (m *Manager) Unsubscribe(ch <-chan ChangeEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// Shutdown closes all subscriber channels. Mutations keep working afterwards
// but nobody is notified.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shutdown {
		return
	}
	m.shutdown = true
	for _, ch := range m.subscribers {
		close(ch)
	}
	m.subscribers = nil
}

// notify sends an event to all subscribers without blocking.
// Must be called with m.mu held.
func (m *Manager) notify(event ChangeEvent) {
	for _, ch := range m.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is behind; it will catch up from the next snapshot.
		}
	}
}
