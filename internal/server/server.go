// Package server exposes the window manager as Model Context Protocol tools
// so agents can drive the desktop.
package server

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/terminal"
	"github.com/jmylchreest/deskfolio/internal/wm"
)

// Transports accepted by Serve.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "streamable-http"
)

// Config holds MCP server configuration.
type Config struct {
	Name      string
	Version   string
	Transport string
	Port      int
}

// Server wraps the MCP server around a window manager.
type Server struct {
	wm     *wm.Manager
	shell  *terminal.Shell
	logger *slog.Logger
	mcp    *mcpserver.MCPServer
}

// New creates a server with every tool registered. shell may be nil, in
// which case the shell tool is not offered.
func New(m *wm.Manager, shell *terminal.Shell, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Name == "" {
		cfg.Name = "deskfolio"
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	s := &Server{
		wm:     m,
		shell:  shell,
		logger: logger,
		mcp:    mcpserver.NewMCPServer(cfg.Name, cfg.Version),
	}
	s.registerTools()
	return s
}

// Serve runs the server on the configured transport until it stops.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case TransportStdio, "":
		s.logger.Debug("serving mcp", "transport", TransportStdio)
		return mcpserver.ServeStdio(s.mcp)
	case TransportHTTP:
		addr := fmt.Sprintf(":%d", cfg.Port)
		s.logger.Info("serving mcp", "transport", TransportHTTP, "addr", addr)
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	kindNames := make([]string, 0, len(model.AllKinds()))
	for _, k := range model.AllKinds() {
		kindNames = append(kindNames, string(k))
	}
	refDesc := mcp.Description("Window id, unique id prefix, or application kind")

	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List open windows in stacking order, bottom first"),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("open_window",
			mcp.WithDescription("Open an application. An already open application is focused and restored; github opens a URL and creates no window."),
			mcp.WithString("kind",
				mcp.Description("Application kind: "+strings.Join(kindNames, ", ")),
				mcp.Enum(kindNames...),
				mcp.Required(),
			),
		),
		s.handleOpenWindow,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus_window",
			mcp.WithDescription("Bring a window to the front"),
			mcp.WithString("ref", refDesc, mcp.Required()),
		),
		s.windowOpHandler("focus", s.wm.Focus),
	)

	s.mcp.AddTool(
		mcp.NewTool("close_window",
			mcp.WithDescription("Close a window"),
			mcp.WithString("ref", refDesc, mcp.Required()),
		),
		s.windowOpHandler("close", s.wm.Close),
	)

	s.mcp.AddTool(
		mcp.NewTool("minimize_window",
			mcp.WithDescription("Toggle a window between minimized and visible"),
			mcp.WithString("ref", refDesc, mcp.Required()),
		),
		s.windowOpHandler("minimize", s.wm.ToggleMinimize),
	)

	s.mcp.AddTool(
		mcp.NewTool("maximize_window",
			mcp.WithDescription("Toggle a window between maximized and a centered restore size"),
			mcp.WithString("ref", refDesc, mcp.Required()),
		),
		s.windowOpHandler("maximize", s.wm.ToggleMaximize),
	)

	s.mcp.AddTool(
		mcp.NewTool("app_status",
			mcp.WithDescription("Report whether an application is running and whether it is minimized"),
			mcp.WithString("kind",
				mcp.Description("Application kind"),
				mcp.Enum(kindNames...),
				mcp.Required(),
			),
		),
		s.handleAppStatus,
	)

	if s.shell != nil {
		s.mcp.AddTool(
			mcp.NewTool("shell",
				mcp.WithDescription("Run a command in the desktop terminal (ls, cat, open, ps, ...). Run 'help' for the list."),
				mcp.WithString("command", mcp.Description("Command line to run"), mcp.Required()),
			),
			s.handleShell,
		)
	}
}
