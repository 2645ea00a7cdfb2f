package dbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// ErrNoOpener is returned when no way to open a URL is available.
var ErrNoOpener = errors.New("no url opener available")

// DefaultOpenTimeout bounds a single open attempt.
const DefaultOpenTimeout = 5 * time.Second

// URLOpener opens a URL outside the application.
type URLOpener interface {
	OpenURL(ctx context.Context, url string) error
}

// runFunc executes a command and waits for it.
type runFunc func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Opener opens URLs with a configured command, then the desktop portal, then
// an auto-detected command such as xdg-open. The first success wins.
type Opener struct {
	command string
	portal  URLOpener
	logger  *slog.Logger
	run     runFunc
	look    func(string) (string, error)
}

// NewOpener creates an opener. command overrides the fallback chain when set;
// the URL is appended as its last argument.
func NewOpener(command string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command: strings.TrimSpace(command),
		portal:  NewPortal(logger),
		logger:  logger,
		run:     runCommand,
		look:    exec.LookPath,
	}
}

// OpenURL opens url.
func (o *Opener) OpenURL(ctx context.Context, url string) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultOpenTimeout)
		defer cancel()
	}

	if o.command != "" {
		return o.runCommandLine(ctx, o.command, url)
	}

	var errs []error
	if o.portal != nil {
		err := o.portal.OpenURL(ctx, url)
		if err == nil {
			return nil
		}
		o.logger.Debug("portal open failed, trying commands", "error", err)
		errs = append(errs, err)
	}

	cmd := o.detectCommand()
	if cmd == "" {
		return errors.Join(append(errs, ErrNoOpener)...)
	}
	if err := o.runCommandLine(ctx, cmd, url); err != nil {
		return errors.Join(append(errs, err)...)
	}
	return nil
}

func (o *Opener) runCommandLine(ctx context.Context, command, url string) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return fmt.Errorf("invalid opener command %q", command)
	}
	args := append(parts[1:], url)

	o.logger.Debug("opening url", "command", parts[0], "url", url)
	if err := o.run(ctx, parts[0], args...); err != nil {
		return fmt.Errorf("%s: %w", parts[0], err)
	}
	return nil
}

// detectCommand returns the first available opener command.
func (o *Opener) detectCommand() string {
	for _, candidate := range []string{"xdg-open", "open", "wslview"} {
		if _, err := o.look(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
