package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/deskfolio/internal/model"
)

func drain(ch <-chan ChangeEvent) []ChangeEvent {
	var events []ChangeEvent
	for {
		select {
		case e, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestSubscribe_ReceivesEvents(t *testing.T) {
	m, _, _ := newTestManager(t)
	ch := m.Subscribe()

	w, _ := m.Open(model.KindTerminal)
	m.ToggleMinimize(w.ID)
	m.Open(model.KindTerminal) // focus + restore
	m.ToggleMaximize(w.ID)
	m.Open(model.KindGitHub)
	m.Close(w.ID)

	events := drain(ch)
	types := make([]ChangeType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	assert.Equal(t, []ChangeType{
		ChangeOpen,
		ChangeMinimize,
		ChangeFocus,
		ChangeMinimize,
		ChangeMaximize,
		ChangeExternal,
		ChangeClose,
	}, types)
	assert.Equal(t, w.ID, events[0].WindowID)
	assert.Equal(t, model.KindGitHub, events[5].Kind)
	assert.Empty(t, events[5].WindowID)
}

func TestSubscribe_MissesProduceNoEvents(t *testing.T) {
	m, _, _ := newTestManager(t)
	ch := m.Subscribe()

	m.Focus("missing")
	m.Close("missing")
	assert.Empty(t, drain(ch))
}

func TestSubscribe_FullBufferDoesNotBlock(t *testing.T) {
	m, _, _ := newTestManager(t)
	ch := m.Subscribe()
	w, _ := m.Open(model.KindTerminal)

	for i := 0; i < subscriberBuffer*3; i++ {
		m.Focus(w.ID)
	}
	assert.Len(t, drain(ch), subscriberBuffer)
}

func TestUnsubscribe_ClosesChannel(t *testing.T) {
	m, _, _ := newTestManager(t)
	ch := m.Subscribe()
	m.Unsubscribe(ch)

	_, ok := <-ch
	assert.False(t, ok)

	// Other subscribers keep receiving.
	other := m.Subscribe()
	m.Open(model.KindBlog)
	assert.Len(t, drain(other), 1)
}

func TestShutdown(t *testing.T) {
	m, _, _ := newTestManager(t)
	ch := m.Subscribe()
	m.Shutdown()

	_, ok := <-ch
	assert.False(t, ok)

	late := m.Subscribe()
	_, ok = <-late
	assert.False(t, ok)

	// The manager still works after shutdown.
	_, opened := m.Open(model.KindBlog)
	require.True(t, opened)
	m.Shutdown()
}

func TestChangeType_String(t *testing.T) {
	assert.Equal(t, "open", ChangeOpen.String())
	assert.Equal(t, "external", ChangeExternal.String())
	assert.Equal(t, "unknown", ChangeType(42).String())
}
