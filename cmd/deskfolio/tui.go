package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/deskfolio/internal/tui"
)

var tuiOpts struct {
	noMusic bool
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive desktop",
	Long: `Launch the interactive desktop in the terminal.

The TUI provides:
  - A dock of applications with running indicators
  - A window list ordered front to back
  - The content of the topmost window
  - A terminal with a read-only file system over the portfolio
  - Live reload when the portfolio file changes

Key bindings:
  1-9         Open an application from the dock
  j/k, ↑/↓    Navigate the window list
  enter       Focus the selected window
  m / x / w   Minimize / maximize / close the selected window
  tab         Raise the backmost window
  :           Open the terminal
  y           Copy the window list as YAML
  p / n       Play or pause music / next song
  ?           Show help
  q           Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&tuiOpts.noMusic, "no-music", false,
		"Disable the music player")
}

func runTUI(cmd *cobra.Command, args []string) error {
	stopWatcher := startWatcher()
	defer stopWatcher()

	opts := tui.RunOptions{
		Options: tui.Options{
			Manager:          desktop,
			Shell:            newShell(),
			Portfolio:        source.Current(),
			ClipboardCommand: cfg.Clipboard.Command,
		},
		Source: source,
	}

	if !tuiOpts.noMusic && len(source.Current().Music) > 0 {
		music, err := newMusic()
		if err != nil {
			logger.Warn("music disabled", "error", err)
		} else {
			defer music.Close()
			opts.Music = music
		}
	}

	return tui.Run(opts)
}
