package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/deskfolio/internal/adapter/output"
	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/portfolio"
	"github.com/jmylchreest/deskfolio/internal/vfs"
)

// BuiltinFunc runs a builtin with its arguments (command name excluded).
type BuiltinFunc func(ctx context.Context, s *Shell, args []string) Result

// BuiltinCommand represents a built-in command.
type BuiltinCommand struct {
	Name  string
	Usage string
	Help  string
	Func  BuiltinFunc
}

// Run executes the command.
func (c *BuiltinCommand) Run(ctx context.Context, s *Shell, args []string) Result {
	return c.Func(ctx, s, args)
}

var (
	builtins   []*BuiltinCommand
	builtinMap = make(map[string]*BuiltinCommand)
)

func register(name, usage, help string, fn BuiltinFunc) {
	cmd := &BuiltinCommand{Name: name, Usage: usage, Help: help, Func: fn}
	builtins = append(builtins, cmd)
	builtinMap[name] = cmd
}

func init() {
	register("help", "help", "Show this help message", builtinHelp)
	register("ls", "ls [path]", "List directory contents", builtinLs)
	register("cd", "cd [path]", "Change the current directory", builtinCd)
	register("pwd", "pwd", "Print the current working directory", builtinPwd)
	register("cat", "cat <file>...", "Print file contents", builtinCat)
	register("echo", "echo [text]", "Display a line of text", builtinEcho)
	register("whoami", "whoami", "Describe the developer", builtinWhoami)
	register("clear", "clear", "Clear the screen", builtinClear)
	register("history", "history", "Display command history", builtinHistory)
	register("open", "open <app>", "Open an application", builtinOpen)
	register("close", "close <window>", "Close a window", builtinClose)
	register("focus", "focus <window>", "Bring a window to the front", builtinFocus)
	register("min", "min <window>", "Minimize or restore a window", builtinMin)
	register("max", "max <window>", "Maximize or restore a window", builtinMax)
	register("ps", "ps", "List open windows", builtinPs)
	register("projects", "projects", "List portfolio projects", builtinProjects)
	register("exit", "exit", "Exit the shell", builtinExit)
}

func lookup(name string) *BuiltinCommand {
	return builtinMap[name]
}

// Builtins returns the names of all builtins in help order.
func Builtins() []string {
	names := make([]string, len(builtins))
	for i, b := range builtins {
		names[i] = b.Name
	}
	return names
}

func builtinHelp(_ context.Context, _ *Shell, _ []string) Result {
	width := 0
	for _, b := range builtins {
		width = max(width, len(b.Usage))
	}

	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, b := range builtins {
		fmt.Fprintf(&sb, "  %-*s  %s\n", width, b.Usage, b.Help)
	}
	fmt.Fprintf(&sb, "\nApplications: %s", kindList())
	return Result{Output: sb.String()}
}

func builtinLs(_ context.Context, s *Shell, args []string) Result {
	s.mu.Lock()
	fs, cwd := s.fs, s.cwd
	s.mu.Unlock()

	target := cwd
	if len(args) > 0 {
		target = fs.Resolve(cwd, args[0])
	}

	entries, err := fs.List(target)
	if errors.Is(err, vfs.ErrNotDir) {
		return Result{Output: args[0]}
	}
	if err != nil {
		return Result{Output: errorLine("ls", args, err)}
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		if e.IsDir {
			names[i] += "/"
		}
	}
	return Result{Output: strings.Join(names, "  ")}
}

func builtinCd(_ context.Context, s *Shell, args []string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := vfs.Home
	if len(args) > 0 {
		target = s.fs.Resolve(s.cwd, args[0])
	}
	if _, err := s.fs.List(target); err != nil {
		return Result{Output: errorLine("cd", args, err)}
	}
	s.cwd = target
	return Result{}
}

func builtinPwd(_ context.Context, s *Shell, _ []string) Result {
	return Result{Output: s.Cwd()}
}

func builtinCat(_ context.Context, s *Shell, args []string) Result {
	if len(args) == 0 {
		return Result{Output: "usage: cat <file>..."}
	}

	s.mu.Lock()
	fs, cwd := s.fs, s.cwd
	s.mu.Unlock()

	parts := make([]string, 0, len(args))
	for _, arg := range args {
		content, err := fs.Read(fs.Resolve(cwd, arg))
		if err != nil {
			parts = append(parts, errorLine("cat", []string{arg}, err))
			continue
		}
		parts = append(parts, strings.TrimSpace(content))
	}
	return Result{Output: strings.Join(parts, "\n")}
}

func builtinEcho(_ context.Context, _ *Shell, args []string) Result {
	return Result{Output: strings.Join(args, " ")}
}

func builtinWhoami(_ context.Context, s *Shell, _ []string) Result {
	s.mu.Lock()
	p := s.portfolio
	s.mu.Unlock()

	name := p.PersonalInfo.Name
	if name == "" {
		return Result{Output: s.opts.User}
	}

	dev := portfolio.DeveloperFrom(p)
	var sb strings.Builder
	sb.WriteString(name)
	if p.PersonalInfo.Role != "" {
		sb.WriteString(" - " + p.PersonalInfo.Role)
	}
	for _, row := range []struct {
		label  string
		values []string
	}{
		{"Languages", dev.Code},
		{"Tools", dev.ToolsUsed},
		{"OS", dev.OperatingSystems},
		{"IDEs", dev.IDEs},
	} {
		if len(row.values) > 0 {
			fmt.Fprintf(&sb, "\n%s: %s", row.label, strings.Join(row.values, ", "))
		}
	}
	return Result{Output: sb.String()}
}

func builtinClear(_ context.Context, _ *Shell, _ []string) Result {
	return Result{Clear: true}
}

func builtinHistory(_ context.Context, s *Shell, _ []string) Result {
	history := s.History()
	lines := make([]string, len(history))
	for i, h := range history {
		lines[i] = fmt.Sprintf("%5d  %s", i+1, h)
	}
	return Result{Output: strings.Join(lines, "\n")}
}

func builtinOpen(ctx context.Context, s *Shell, args []string) Result {
	if len(args) != 1 {
		return Result{Output: "usage: open <app>\napplications: " + kindList()}
	}
	kind, err := model.ParseKind(args[0])
	if err != nil {
		return Result{Output: fmt.Sprintf("open: %s: unknown application\napplications: %s", args[0], kindList())}
	}

	if kind.External() {
		s.wm.OpenContext(ctx, kind)
		return Result{Output: fmt.Sprintf("opening %s in the browser", kind.Title())}
	}

	running := s.wm.IsRunning(kind)
	w, ok := s.wm.OpenContext(ctx, kind)
	if !ok {
		return Result{Output: fmt.Sprintf("open: %s: failed", args[0])}
	}
	verb := "opened"
	if running {
		verb = "focused"
	}
	return Result{Output: fmt.Sprintf("%s %s (%s)", verb, w.Title(), w.ID)}
}

func builtinClose(_ context.Context, s *Shell, args []string) Result {
	return windowCommand(s, "close", args, "closed", s.wm.Close)
}

func builtinFocus(_ context.Context, s *Shell, args []string) Result {
	return windowCommand(s, "focus", args, "focused", s.wm.Focus)
}

func builtinMin(_ context.Context, s *Shell, args []string) Result {
	return windowCommand(s, "min", args, "toggled minimize on", s.wm.ToggleMinimize)
}

func builtinMax(_ context.Context, s *Shell, args []string) Result {
	return windowCommand(s, "max", args, "toggled maximize on", s.wm.ToggleMaximize)
}

// windowCommand resolves a window reference and applies op to it.
func windowCommand(s *Shell, name string, args []string, verb string, op func(id string) bool) Result {
	if len(args) != 1 {
		return Result{Output: fmt.Sprintf("usage: %s <window>", name)}
	}
	w, ok := s.wm.Resolve(args[0])
	if !ok || !op(w.ID) {
		return Result{Output: fmt.Sprintf("%s: %s: no such window", name, args[0])}
	}
	return Result{Output: fmt.Sprintf("%s %s (%s)", verb, w.Title(), w.ID)}
}

func builtinPs(_ context.Context, s *Shell, _ []string) Result {
	windows := s.wm.Windows()
	if len(windows) == 0 {
		return Result{Output: "no open windows"}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-4s %-9s %-10s %s\n", "Z", "APP", "STATE", "ID")
	f := output.NewPlainFormatter(output.FormatterOptions{Template: psTemplate})
	if err := f.Format(&sb, windows); err != nil {
		return Result{Output: "ps: " + err.Error()}
	}
	return Result{Output: strings.TrimRight(sb.String(), "\n")}
}

const psTemplate = `{{printf "%-4d %-9s %-10s %s" .Window.ZIndex .Window.Kind .Window.State .Window.ID}}`

func builtinProjects(_ context.Context, s *Shell, _ []string) Result {
	s.mu.Lock()
	p := s.portfolio
	s.mu.Unlock()

	projects := model.ProjectsFrom(p)
	if len(projects) == 0 {
		return Result{Output: "no projects"}
	}

	lines := make([]string, 0, len(projects))
	for _, proj := range projects {
		line := fmt.Sprintf("%-24s %s", proj.ID, proj.Name)
		if proj.Ongoing() {
			line += " (ongoing)"
		} else if proj.Year != "" {
			line += " (" + proj.Year + ")"
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", "cat ~/projects/<id> for details")
	return Result{Output: strings.Join(lines, "\n")}
}

func builtinExit(_ context.Context, _ *Shell, _ []string) Result {
	return Result{Output: "logout", Exit: true}
}

func kindList() string {
	kinds := model.AllKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// errorLine renders "cmd: arg: reason" using the sentinel's message.
func errorLine(cmd string, args []string, err error) string {
	arg := ""
	if len(args) > 0 {
		arg = args[0] + ": "
	}
	for _, sentinel := range []error{vfs.ErrNotFound, vfs.ErrNotDir, vfs.ErrIsDir} {
		if errors.Is(err, sentinel) {
			return fmt.Sprintf("%s: %s%s", cmd, arg, sentinel)
		}
	}
	return fmt.Sprintf("%s: %s%s", cmd, arg, err)
}
