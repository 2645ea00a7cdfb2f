// Package dbus talks to the desktop session over D-Bus. It opens URLs through
// the org.freedesktop.portal.OpenURI portal and posts desktop notifications
// through org.freedesktop.Notifications, with command-line fallbacks for
// systems without a session bus.
package dbus
