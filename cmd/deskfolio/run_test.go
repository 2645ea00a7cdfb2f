package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/deskfolio/internal/adapter/output"
	"github.com/jmylchreest/deskfolio/internal/config"
	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/wm"
)

func newRunDesktop(t *testing.T) (*wm.Manager, *wm.StaticViewport, *[]string) {
	t.Helper()
	var opened []string
	vp := wm.NewStaticViewport(1920, 1080)
	m := wm.New(wm.DefaultOptions(), wm.Env{
		Viewport: vp,
		Opener: wm.URLOpenerFunc(func(_ context.Context, url string) error {
			opened = append(opened, url)
			return nil
		}),
	})
	t.Cleanup(m.Shutdown)
	return m, vp, &opened
}

func TestApplyOp_Sequence(t *testing.T) {
	m, vp, opened := newRunDesktop(t)
	ctx := context.Background()

	for _, op := range []string{"open:terminal", "resize:1000x800", "open:projects", "max:terminal", "open:github"} {
		require.NoError(t, applyOp(ctx, m, vp, op), op)
	}

	term, ok := m.ByKind(model.KindTerminal)
	require.True(t, ok)
	assert.True(t, term.Maximized)
	assert.Equal(t, model.Size{Width: 1000, Height: 800}, term.Size)
	assert.Equal(t, wm.DefaultInitialZIndex, term.ZIndex)

	projects, ok := m.ByKind(model.KindProjects)
	require.True(t, ok)
	assert.Equal(t, model.Point{X: 50, Y: 100}, projects.Position)

	assert.Equal(t, []string{wm.DefaultGitHubURL}, *opened)
	assert.Equal(t, 2, m.Count())
}

func TestApplyOp_MinimizeAndClose(t *testing.T) {
	m, vp, _ := newRunDesktop(t)
	ctx := context.Background()

	require.NoError(t, applyOp(ctx, m, vp, "open:blog"))
	require.NoError(t, applyOp(ctx, m, vp, "min:blog"))
	assert.True(t, m.IsMinimized(model.KindBlog))

	w, _ := m.ByKind(model.KindBlog)
	require.NoError(t, applyOp(ctx, m, vp, "close:"+w.ID))
	assert.Zero(t, m.Count())
}

func TestApplyOp_Errors(t *testing.T) {
	m, vp, _ := newRunDesktop(t)
	ctx := context.Background()

	assert.ErrorIs(t, applyOp(ctx, m, vp, "open"), errBadOp)
	assert.ErrorIs(t, applyOp(ctx, m, vp, "open:"), errBadOp)
	assert.ErrorIs(t, applyOp(ctx, m, vp, "open:calculator"), model.ErrUnknownKind)
	assert.ErrorIs(t, applyOp(ctx, m, vp, "focus:terminal"), errNoSuchWindow)
	assert.ErrorIs(t, applyOp(ctx, m, vp, "resize:big"), config.ErrInvalidSize)
	assert.ErrorIs(t, applyOp(ctx, m, vp, "spin:terminal"), errUnknownVerb)
}

func TestOutputWindows_Field(t *testing.T) {
	m, vp, _ := newRunDesktop(t)
	require.NoError(t, applyOp(context.Background(), m, vp, "open:resume"))

	runOpts.field = "size"
	t.Cleanup(func() { runOpts.field = "" })

	var buf bytes.Buffer
	require.NoError(t, outputWindows(&buf, m.Windows(), output.FormatPlain))
	assert.Equal(t, "1000x700\n", buf.String())
}

func TestOutputWindows_IDs(t *testing.T) {
	m, vp, _ := newRunDesktop(t)
	require.NoError(t, applyOp(context.Background(), m, vp, "open:books"))

	var buf bytes.Buffer
	require.NoError(t, outputWindows(&buf, m.Windows(), output.FormatIDs))

	w, _ := m.ByKind(model.KindBooks)
	assert.Equal(t, w.ID+"\n", buf.String())
}

func TestSelectWindows(t *testing.T) {
	m, vp, _ := newRunDesktop(t)
	ctx := context.Background()
	for _, op := range []string{"open:terminal", "open:blog", "open:books", "min:blog"} {
		require.NoError(t, applyOp(ctx, m, vp, op))
	}

	t.Cleanup(func() {
		runOpts.state, runOpts.sortOrder, runOpts.index, runOpts.kind = "", "", 0, ""
		runOpts.sortBy = ""
	})

	runOpts.state = "visible"
	runOpts.sortOrder = "asc"
	got, err := selectWindows(m.Windows())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.KindTerminal, got[0].Kind)
	assert.Equal(t, model.KindBooks, got[1].Kind)

	runOpts.index = 2
	got, err = selectWindows(m.Windows())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.KindBooks, got[0].Kind)

	runOpts.index = 5
	_, err = selectWindows(m.Windows())
	assert.Error(t, err)

	runOpts.index = 0
	runOpts.kind = "nope"
	_, err = selectWindows(m.Windows())
	assert.ErrorIs(t, err, model.ErrUnknownKind)

	runOpts.kind = ""
	runOpts.sortBy = "bogus"
	_, err = selectWindows(m.Windows())
	assert.Error(t, err)
}
