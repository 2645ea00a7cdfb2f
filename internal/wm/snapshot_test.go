package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/deskfolio/internal/model"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	m, _, _ := newTestManager(t)
	term, _ := m.Open(model.KindTerminal)
	m.Open(model.KindBlog)
	m.Focus(term.ID)

	snap := m.Snapshot()
	assert.Len(t, snap.Windows, 2)
	assert.Equal(t, 13, snap.NextZIndex)

	other, _, _ := newTestManager(t)
	require.NoError(t, other.Restore(snap))
	assert.Equal(t, m.Windows(), other.Windows())

	top, ok := other.Top()
	require.True(t, ok)
	assert.Equal(t, term.ID, top.ID)

	// The counter continues where the snapshot left off.
	w, _ := other.Open(model.KindGames)
	assert.Equal(t, 13, w.ZIndex)
}

func TestSnapshot_IsACopy(t *testing.T) {
	m, _, _ := newTestManager(t)
	m.Open(model.KindTerminal)

	snap := m.Snapshot()
	snap.Windows[0].ZIndex = 99

	w, _ := m.ByKind(model.KindTerminal)
	assert.Equal(t, DefaultInitialZIndex, w.ZIndex)
}

func TestRestore_CounterStaysAboveWindows(t *testing.T) {
	m, _, _ := newTestManager(t)

	require.NoError(t, m.Restore(Snapshot{
		Windows: []model.Window{
			{ID: "blog-x", Kind: model.KindBlog, ZIndex: 40},
		},
		NextZIndex: 5,
	}))

	w, _ := m.Open(model.KindBooks)
	assert.Equal(t, 41, w.ZIndex)
}

func TestRestore_CounterNeverMovesBack(t *testing.T) {
	m, _, _ := newTestManager(t)
	for _, k := range []model.Kind{model.KindTerminal, model.KindBlog, model.KindBooks} {
		m.Open(k)
	}

	require.NoError(t, m.Restore(Snapshot{}))
	assert.Zero(t, m.Count())

	w, _ := m.Open(model.KindGames)
	assert.Equal(t, 13, w.ZIndex)
}

func TestRestore_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		windows []model.Window
	}{
		{"unknown kind", []model.Window{{ID: "x-1", Kind: "calculator"}}},
		{"external kind", []model.Window{{ID: "github-1", Kind: model.KindGitHub}}},
		{"missing id", []model.Window{{Kind: model.KindBlog}}},
		{"duplicate kind", []model.Window{
			{ID: "blog-1", Kind: model.KindBlog},
			{ID: "blog-2", Kind: model.KindBlog},
		}},
		{"duplicate id", []model.Window{
			{ID: "same", Kind: model.KindBlog},
			{ID: "same", Kind: model.KindBooks},
		}},
		{"duplicate z-index", []model.Window{
			{ID: "terminal-a", Kind: model.KindTerminal, ZIndex: 20},
			{ID: "blog-b", Kind: model.KindBlog, ZIndex: 20},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestManager(t)
			m.Open(model.KindTerminal)

			err := m.Restore(Snapshot{Windows: tt.windows})
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
			assert.True(t, m.IsRunning(model.KindTerminal))
		})
	}
}

func TestRestore_OrdersByZIndex(t *testing.T) {
	m, _, _ := newTestManager(t)

	require.NoError(t, m.Restore(Snapshot{Windows: []model.Window{
		{ID: "blog-b", Kind: model.KindBlog, ZIndex: 30},
		{ID: "terminal-a", Kind: model.KindTerminal, ZIndex: 20},
	}}))

	windows := m.Windows()
	require.Len(t, windows, 2)
	assert.Equal(t, "terminal-a", windows[0].ID)
	assert.Equal(t, "blog-b", windows[1].ID)

	top, ok := m.Top()
	require.True(t, ok)
	assert.Equal(t, "blog-b", top.ID)
}

func TestRestore_NotifiesSubscribers(t *testing.T) {
	m, _, _ := newTestManager(t)
	ch := m.Subscribe()

	require.NoError(t, m.Restore(Snapshot{Windows: []model.Window{
		{ID: "blog-1", Kind: model.KindBlog, ZIndex: 10},
	}}))

	events := drain(ch)
	require.Len(t, events, 1)
	assert.Equal(t, ChangeOpen, events[0].Type)
	assert.Equal(t, "blog-1", events[0].WindowID)
}
