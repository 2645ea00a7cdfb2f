package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/deskfolio/internal/adapter/output"
	"github.com/jmylchreest/deskfolio/internal/config"
	"github.com/jmylchreest/deskfolio/internal/core"
	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/store"
	"github.com/jmylchreest/deskfolio/internal/wm"
)

var (
	errBadOp        = errors.New("operation must be VERB:ARG")
	errUnknownVerb  = errors.New("unknown verb")
	errNoSuchWindow = errors.New("no window matches")
)

var runOpts struct {
	// Filter options
	kind  string
	state string
	since string
	limit int

	// Sort options
	sortBy    string
	sortOrder string

	// Output options
	format   string
	field    string
	template string
	index    int

	// Session options
	session bool
	reset   bool
}

var runCmd = &cobra.Command{
	Use:   "run [op...]",
	Short: "Apply window operations and print the resulting desktop",
	Long: `Apply a sequence of window operations to a fresh desktop and print
the windows that remain.

Operations are VERB:ARG pairs applied in order:
  open:KIND      Open or focus an application (github opens the browser)
  focus:REF      Bring a window to the front
  close:REF      Close a window
  min:REF        Toggle minimized
  max:REF        Toggle maximized
  resize:WxH     Change the viewport size used for later placement

REF is a window id, a kind name, or a unique id prefix.

Examples:
  # Open two applications and maximize the terminal
  deskfolio run open:terminal open:projects max:terminal

  # Window ids only, for scripting
  deskfolio run open:blog --format ids

  # Print a single field
  deskfolio run open:resume --field state

  # Build up a desktop across invocations
  deskfolio run -s open:terminal
  deskfolio run -s open:blog focus:terminal

  # Only visible windows, oldest first
  deskfolio run open:blog open:books min:blog --state visible --sort opened --order asc`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Filter flags
	runCmd.Flags().StringVar(&runOpts.kind, "kind", "",
		"Only show windows of this kind")
	runCmd.Flags().StringVar(&runOpts.state, "state", "",
		"Only show windows in this state (restored, minimized, maximized, visible)")
	runCmd.Flags().StringVar(&runOpts.since, "since", "",
		"Only show windows opened within this duration (e.g., 30m, 1h)")
	runCmd.Flags().IntVarP(&runOpts.limit, "limit", "n", 0,
		"Maximum number of windows to show (0=unlimited)")

	// Sort flags
	runCmd.Flags().StringVar(&runOpts.sortBy, "sort", "z",
		"Sort by field (z, opened, kind)")
	runCmd.Flags().StringVar(&runOpts.sortOrder, "order", "desc",
		"Sort order (asc, desc)")

	// Output flags

	runCmd.Flags().StringVarP(&runOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml, dmenu, ids)")
	runCmd.Flags().StringVar(&runOpts.field, "field", "",
		"Output a single field per window (id, kind, title, state, z, position, size)")
	runCmd.Flags().StringVar(&runOpts.template, "template", "",
		"Custom Go template for plain and dmenu output")
	runCmd.Flags().IntVar(&runOpts.index, "index", 0,
		"Output only the window at this 1-based position after sorting")

	// Session flags
	runCmd.Flags().BoolVarP(&runOpts.session, "session", "s", false,
		"Start from the saved desktop session and save the result")
	runCmd.Flags().BoolVar(&runOpts.reset, "reset", false,
		"With --session, start from an empty desktop")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	format, err := output.ParseFormatType(runOpts.format)
	if err != nil {
		return err
	}

	sessionPath := config.SessionPath()
	if runOpts.session && !runOpts.reset {
		sess, err := store.LoadSession(sessionPath)
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		if err := sess.Apply(desktop, viewport); err != nil {
			logger.Warn("ignoring saved session", "path", sessionPath, "error", err)
		}
	}

	for _, op := range args {
		if err := applyOp(ctx, desktop, viewport, op); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if runOpts.session {
		if err := store.SaveSession(sessionPath, store.Capture(desktop, viewport.Size())); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
	}

	windows, err := selectWindows(desktop.Windows())
	if err != nil {
		return err
	}
	return outputWindows(os.Stdout, windows, format)
}

// selectWindows applies the filter, sort and index options.
func selectWindows(windows []model.Window) ([]model.Window, error) {
	opts := core.FilterOptions{Limit: runOpts.limit}

	if runOpts.kind != "" {
		kind, err := model.ParseKind(runOpts.kind)
		if err != nil {
			return nil, err
		}
		opts.Kind = kind
	}

	state, err := core.ParseState(runOpts.state)
	if err != nil {
		return nil, err
	}
	opts.State = state

	if runOpts.since != "" {
		d, err := core.ParseDuration(runOpts.since)
		if err != nil {
			return nil, err
		}
		opts.Since = d
	}

	field, err := core.ParseSortField(runOpts.sortBy)
	if err != nil {
		return nil, err
	}
	order, err := core.ParseSortOrder(runOpts.sortOrder)
	if err != nil {
		return nil, err
	}
	core.Sort(windows, core.SortOptions{Field: field, Order: order})

	windows = core.Filter(windows, opts)

	if runOpts.index > 0 {
		w := core.LookupByIndex(windows, runOpts.index)
		if w == nil {
			return nil, fmt.Errorf("window at index %d not found", runOpts.index)
		}
		return []model.Window{*w}, nil
	}
	return windows, nil
}

// applyOp applies one VERB:ARG operation to the desktop.
func applyOp(ctx context.Context, m *wm.Manager, vp *wm.StaticViewport, op string) error {
	verb, arg, ok := strings.Cut(op, ":")
	if !ok || arg == "" {
		return errBadOp
	}

	verb = strings.ToLower(verb)
	switch verb {
	case "open":
		kind, err := model.ParseKind(arg)
		if err != nil {
			return err
		}
		m.OpenContext(ctx, kind)
		return nil

	case "resize":
		size, err := config.ParseSize(arg)
		if err != nil {
			return err
		}
		vp.Set(size.Width, size.Height)
		return nil

	case "focus", "close", "min", "max":
		w, ok := m.Resolve(arg)
		if !ok {
			return fmt.Errorf("%w %q", errNoSuchWindow, arg)
		}
		switch verb {
		case "focus":
			m.Focus(w.ID)
		case "close":
			m.Close(w.ID)
		case "min":
			m.ToggleMinimize(w.ID)
		case "max":
			m.ToggleMaximize(w.ID)
		}
		return nil
	}

	return fmt.Errorf("%w %q", errUnknownVerb, verb)
}

// outputWindows writes the windows in the requested format.
func outputWindows(w io.Writer, windows []model.Window, format output.FormatType) error {
	if runOpts.field != "" {
		for i := range windows {
			fmt.Fprintln(w, output.FormatField(&windows[i], runOpts.field))
		}
		return nil
	}

	opts := output.DefaultFormatterOptions()
	opts.Template = runOpts.template

	return output.NewFormatter(format, opts).Format(w, windows)
}
