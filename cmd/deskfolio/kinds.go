package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/deskfolio/internal/model"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the applications in the dock",
	Long: `List every application kind in dock order with its default window size.

External kinds open a URL in the browser instead of a window.`,
	Args: cobra.NoArgs,
	RunE: runKinds,
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

func runKinds(cmd *cobra.Command, args []string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "KIND", "TITLE", "WINDOW")

	for i, kind := range model.AllKinds() {
		window := desktop.DefaultSize(kind).String()
		if kind.External() {
			window = "opens " + desktop.Options().GitHubURL
		}
		t.Row(fmt.Sprintf("%d", i+1), string(kind), kind.Title(), window)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
