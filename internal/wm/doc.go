// Package wm implements the desktop window manager.
//
// A Manager owns the collection of open application windows. It assigns each
// window an identity, a stacking order and a layout, and exposes the only
// mutation surface for them: Open, Focus, Close, ToggleMinimize and
// ToggleMaximize. At most one window exists per application kind.
//
// Z-indices come from a counter that only ever grows, so a value is never
// handed out twice, not even to the window that already holds the top spot.
//
// Views read state by taking snapshots:
//
//	mgr := wm.New(wm.DefaultOptions(), wm.Env{Viewport: wm.NewStaticViewport(1920, 1080)})
//	events := mgr.Subscribe()
//	mgr.Open(model.KindTerminal)
//	<-events
//	for _, w := range mgr.Windows() {
//		// draw w
//	}
//
// Operations on ids that do not exist are silent no-ops; the bool results
// only report whether the target was found.
package wm
