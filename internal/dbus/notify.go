package dbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

const (
	// NotificationsBusName is the notification daemon's bus name.
	NotificationsBusName = "org.freedesktop.Notifications"
	// NotificationsPath is the notification daemon's object path.
	NotificationsPath = "/org/freedesktop/Notifications"
	// NotifyMethod posts or replaces a notification.
	NotifyMethod = "org.freedesktop.Notifications.Notify"
)

// Urgency levels for the urgency hint.
const (
	UrgencyLow      byte = 0
	UrgencyNormal   byte = 1
	UrgencyCritical byte = 2
)

// Notification is a desktop notification to post.
type Notification struct {
	AppName       string
	ReplacesID    uint32 // Non-zero replaces an earlier notification in place
	AppIcon       string
	Summary       string
	Body          string
	Category      string
	Urgency       byte
	ExpireTimeout int32 // -1 = server default, 0 = never expire
}

// args returns the Notify(susssasa{sv}i) arguments.
func (n Notification) args() []any {
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(n.Urgency),
	}
	if n.Category != "" {
		hints["category"] = dbus.MakeVariant(n.Category)
	}
	return []any{
		n.AppName,
		n.ReplacesID,
		n.AppIcon,
		n.Summary,
		n.Body,
		[]string{},
		hints,
		n.ExpireTimeout,
	}
}

// Notifier posts desktop notifications.
type Notifier struct {
	logger  *slog.Logger
	connect func() (*dbus.Conn, error)
}

// NewNotifier creates a notifier on the session bus.
func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger, connect: dbus.SessionBus}
}

// Notify posts n and returns the id the daemon assigned to it.
func (s *Notifier) Notify(ctx context.Context, n Notification) (uint32, error) {
	conn, err := s.connect()
	if err != nil {
		return 0, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	obj := conn.Object(NotificationsBusName, dbus.ObjectPath(NotificationsPath))
	var id uint32
	if err := obj.CallWithContext(ctx, NotifyMethod, 0, n.args()...).Store(&id); err != nil {
		return 0, fmt.Errorf("notify failed: %w", err)
	}

	s.logger.Debug("posted notification", "id", id, "summary", n.Summary)
	return id, nil
}
