package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// result is the YAML body of every tool response.
type result struct {
	OK      bool           `yaml:"ok"`
	Action  string         `yaml:"action"`
	Window  *model.Window  `yaml:"window,omitempty"`
	Windows []model.Window `yaml:"windows,omitempty"`
	Status  *appStatus     `yaml:"status,omitempty"`
	Output  string         `yaml:"output,omitempty"`
	Error   string         `yaml:"error,omitempty"`
}

type appStatus struct {
	Kind      model.Kind `yaml:"kind"`
	Running   bool       `yaml:"running"`
	Minimized bool       `yaml:"minimized"`
}

// resultToText serializes a result to YAML for the MCP response.
func resultToText(r result) string {
	b, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Sprintf("ok: %v\naction: %s\nerror: %s", r.OK, r.Action, r.Error)
	}
	return string(b)
}

func toolError(action, msg string) *mcp.CallToolResult {
	return mcp.NewToolResultError(resultToText(result{Action: action, Error: msg}))
}

func stringParam(params map[string]any, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func (s *Server) handleListWindows(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	windows := s.wm.Windows()
	return mcp.NewToolResultText(resultToText(result{OK: true, Action: "list", Windows: windows})), nil
}

func (s *Server) handleOpenWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := stringParam(request.GetArguments(), "kind", "")
	kind, err := model.ParseKind(raw)
	if err != nil {
		return toolError("open", err.Error()), nil
	}

	w, ok := s.wm.OpenContext(ctx, kind)
	if !ok {
		if kind.External() {
			return mcp.NewToolResultText(resultToText(result{OK: true, Action: "open_external"})), nil
		}
		return toolError("open", fmt.Sprintf("could not open %s", kind)), nil
	}
	s.logger.Debug("mcp open", "kind", kind, "id", w.ID)
	return mcp.NewToolResultText(resultToText(result{OK: true, Action: "open", Window: &w})), nil
}

// windowOpHandler resolves the ref argument and applies op to the window.
func (s *Server) windowOpHandler(action string, op func(id string) bool) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref := stringParam(request.GetArguments(), "ref", "")
		if ref == "" {
			return toolError(action, "ref is required"), nil
		}

		w, ok := s.wm.Resolve(ref)
		if !ok || !op(w.ID) {
			return toolError(action, fmt.Sprintf("no window matches %q", ref)), nil
		}

		r := result{OK: true, Action: action}
		if after, ok := s.wm.Get(w.ID); ok {
			r.Window = &after
		}
		return mcp.NewToolResultText(resultToText(r)), nil
	}
}

func (s *Server) handleAppStatus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := model.ParseKind(stringParam(request.GetArguments(), "kind", ""))
	if err != nil {
		return toolError("status", err.Error()), nil
	}

	status := &appStatus{
		Kind:      kind,
		Running:   s.wm.IsRunning(kind),
		Minimized: s.wm.IsMinimized(kind),
	}
	return mcp.NewToolResultText(resultToText(result{OK: true, Action: "status", Status: status})), nil
}

func (s *Server) handleShell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	line := stringParam(request.GetArguments(), "command", "")
	res := s.shell.ExecContext(ctx, line)
	return mcp.NewToolResultText(resultToText(result{OK: true, Action: "shell", Output: res.Output})), nil
}
