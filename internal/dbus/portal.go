package dbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

const (
	// PortalBusName is the desktop portal's bus name.
	PortalBusName = "org.freedesktop.portal.Desktop"
	// PortalPath is the desktop portal's object path.
	PortalPath = "/org/freedesktop/portal/desktop"
	// OpenURIMethod opens a URI in the user's preferred handler.
	OpenURIMethod = "org.freedesktop.portal.OpenURI.OpenURI"
)

// Portal opens URLs through the XDG desktop portal.
type Portal struct {
	logger  *slog.Logger
	connect func() (*dbus.Conn, error)
}

// NewPortal creates a portal client on the session bus.
func NewPortal(logger *slog.Logger) *Portal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Portal{logger: logger, connect: dbus.SessionBus}
}

// OpenURL asks the portal to open url. The portal replies with a request
// handle; the actual launch happens asynchronously in the portal.
func (p *Portal) OpenURL(ctx context.Context, url string) error {
	conn, err := p.connect()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	obj := conn.Object(PortalBusName, dbus.ObjectPath(PortalPath))
	call := obj.CallWithContext(ctx, OpenURIMethod, 0, "", url, map[string]dbus.Variant{})
	if call.Err != nil {
		return fmt.Errorf("portal OpenURI failed: %w", call.Err)
	}

	var handle dbus.ObjectPath
	if err := call.Store(&handle); err == nil {
		p.logger.Debug("portal accepted url", "url", url, "request", handle)
	}
	return nil
}
