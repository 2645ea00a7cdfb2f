// Package main provides the CLI entrypoint for deskfolio.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/deskfolio/internal/config"
	"github.com/jmylchreest/deskfolio/internal/dbus"
	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/portfolio"
	"github.com/jmylchreest/deskfolio/internal/terminal"
	"github.com/jmylchreest/deskfolio/internal/wm"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose       bool
		configPath    string
		portfolioPath string
	}
	logger *slog.Logger

	source   *portfolio.Source
	viewport *wm.StaticViewport
	desktop  *wm.Manager
	opener   *dbus.Opener
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "deskfolio",
	Short: "A desktop-style portfolio for the terminal",
	Long: `deskfolio presents a portfolio as a small desktop: a dock of
applications, stacked windows that can be focused, minimized, maximized
and closed, and a terminal with a read-only file system over the
portfolio content.

Running deskfolio without a subcommand launches the interactive TUI.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		portfolioPath := globalOpts.portfolioPath
		if portfolioPath == "" {
			portfolioPath = cfg.PortfolioPath()
		}
		source, err = portfolio.NewSource(portfolioPath)
		if err != nil {
			return fmt.Errorf("failed to load portfolio: %w", err)
		}

		desktop = newDesktop(source.Current())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if desktop != nil {
			desktop.Shutdown()
		}
		return nil
	},
	// Default to TUI when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/deskfolio/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.portfolioPath, "portfolio", "",
		"Path to portfolio file (default: ~/.local/share/deskfolio/portfolio.yaml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// newDesktop builds the window manager from the loaded configuration.
func newDesktop(p *model.Portfolio) *wm.Manager {
	opts := cfg.WindowOptions(p.SocialLinks.GitHub)
	opts.Logger = logger

	viewport = wm.NewStaticViewport(cfg.Desktop.Width, cfg.Desktop.Height)
	opener = dbus.NewOpener(cfg.Browser.Command, logger)

	return wm.New(opts, wm.Env{
		Viewport: viewport,
		Clock:    wm.SystemClock{},
		Opener:   opener,
	})
}

// newShell creates a terminal over the global desktop.
func newShell() *terminal.Shell {
	return terminal.New(desktop, source.Current(), terminal.Options{
		Prompt:    cfg.Terminal.Prompt,
		User:      cfg.Terminal.User,
		Host:      cfg.Terminal.Host,
		WrapWidth: cfg.Terminal.WrapWidth,
		Logger:    logger,
	})
}

// startWatcher reloads the portfolio on change when enabled in the config.
// The returned stop function is always safe to call.
func startWatcher() func() {
	if !cfg.Portfolio.Watch {
		return func() {}
	}
	w, err := portfolio.NewWatcher(source)
	if err != nil {
		logger.Warn("failed to create portfolio watcher", "error", err)
		return func() {}
	}
	if err := w.Start(); err != nil {
		logger.Warn("failed to start portfolio watcher", "path", source.Path(), "error", err)
		return func() {}
	}
	return func() {
		if err := w.Stop(); err != nil {
			logger.Debug("failed to stop portfolio watcher", "error", err)
		}
	}
}
