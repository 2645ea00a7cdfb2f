package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/deskfolio/internal/server"
)

var serveOpts struct {
	transport string
	port      int
	noShell   bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the desktop over the Model Context Protocol",
	Long: `Start an MCP server whose tools drive the desktop: list, open, focus,
close, minimize and maximize windows, query an application's status and
run terminal commands.

Examples:
  # For an MCP client that launches the server
  deskfolio serve

  # Over HTTP
  deskfolio serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveOpts.transport, "transport", "t", server.TransportStdio,
		"Transport (stdio, streamable-http)")
	serveCmd.Flags().IntVarP(&serveOpts.port, "port", "p", 8080,
		"Port for the streamable-http transport")
	serveCmd.Flags().BoolVar(&serveOpts.noShell, "no-shell", false,
		"Do not offer the shell tool")
}

func runServe(cmd *cobra.Command, args []string) error {
	stopWatcher := startWatcher()
	defer stopWatcher()

	srvCfg := server.Config{
		Name:      "deskfolio",
		Version:   version,
		Transport: serveOpts.transport,
		Port:      serveOpts.port,
	}

	shell := newShell()
	source.OnChange(shell.SetPortfolio)
	if serveOpts.noShell {
		shell = nil
	}

	return server.New(desktop, shell, srvCfg, logger).Serve(srvCfg)
}
