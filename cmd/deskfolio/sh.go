package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/deskfolio/internal/model"
)

var shCmd = &cobra.Command{
	Use:   "sh",
	Short: "Run the desktop terminal on stdin",
	Long: `Run the desktop terminal as a line-oriented shell on stdin and stdout.

The terminal window is opened on start. Commands that open, focus or close
windows act on the same desktop, so "ps" shows the effect.

Examples:
  # Interactive
  deskfolio sh

  # Scripted
  printf 'cd projects\nls\n' | deskfolio sh`,
	RunE: runSh,
}

func init() {
	rootCmd.AddCommand(shCmd)
}

func runSh(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stopWatcher := startWatcher()
	defer stopWatcher()

	shell := newShell()
	source.OnChange(shell.SetPortfolio)
	desktop.OpenContext(ctx, model.KindTerminal)

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	interactive := isatty.IsTerminal(os.Stdin.Fd())

	for {
		if interactive {
			fmt.Fprint(out, shell.Prompt())
		}
		if !scanner.Scan() {
			break
		}

		res := shell.ExecContext(ctx, scanner.Text())
		if res.Clear && interactive {
			fmt.Fprint(out, "\033[H\033[2J")
		}
		if res.Output != "" {
			fmt.Fprintln(out, res.Output)
		}
		if res.Exit {
			break
		}
	}

	return scanner.Err()
}
