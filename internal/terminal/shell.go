package terminal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"text/template"

	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/vfs"
	"github.com/jmylchreest/deskfolio/internal/wm"
)

// ErrUnterminatedQuote is returned for a line with an unclosed quote.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Defaults for Options.
const (
	DefaultPrompt = "{{.User}}@{{.Host}} {{.Cwd}} $ "
	DefaultUser   = "guest"
	DefaultHost   = "deskfolio"
)

// Options configures a Shell.
type Options struct {
	Prompt    string // text/template over User, Host and Cwd
	User      string
	Host      string
	WrapWidth int
	Logger    *slog.Logger
}

// Result is the outcome of one command line.
type Result struct {
	Output string // Text to print; empty for silent commands
	Clear  bool   // The screen should be cleared
	Exit   bool   // The session should end
}

// Shell interprets command lines. It is safe for concurrent use.
type Shell struct {
	mu        sync.Mutex
	wm        *wm.Manager
	portfolio *model.Portfolio
	fs        *vfs.FS
	cwd       string
	history   []string
	opts      Options
	prompt    *template.Template
	logger    *slog.Logger
}

// New creates a shell over the given window manager and portfolio.
func New(m *wm.Manager, p *model.Portfolio, opts Options) *Shell {
	if opts.User == "" {
		opts.User = DefaultUser
	}
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.WrapWidth <= 0 {
		opts.WrapWidth = vfs.DefaultWrapWidth
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tmpl, err := template.New("prompt").Parse(opts.Prompt)
	if opts.Prompt == "" || err != nil {
		if err != nil {
			logger.Warn("invalid prompt template, using default", "error", err)
		}
		tmpl = template.Must(template.New("prompt").Parse(DefaultPrompt))
	}

	if p == nil {
		p = &model.Portfolio{}
	}

	return &Shell{
		wm:        m,
		portfolio: p,
		fs:        vfs.New(p, opts.WrapWidth),
		cwd:       vfs.Home,
		opts:      opts,
		prompt:    tmpl,
		logger:    logger,
	}
}

// SetPortfolio swaps the portfolio and rebuilds the file tree. The working
// directory falls back to home if it no longer exists.
func (s *Shell) SetPortfolio(p *model.Portfolio) {
	if p == nil {
		return
	}
	fs := vfs.New(p, s.opts.WrapWidth)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolio = p
	s.fs = fs
	if !fs.IsDir(s.cwd) {
		s.cwd = vfs.Home
	}
}

// Cwd returns the working directory.
func (s *Shell) Cwd() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cwd
}

// History returns the command lines executed so far.
func (s *Shell) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.history...)
}

// Prompt renders the prompt for the current working directory.
func (s *Shell) Prompt() string {
	s.mu.Lock()
	cwd := s.cwd
	s.mu.Unlock()

	if cwd == vfs.Home {
		cwd = "~"
	} else if strings.HasPrefix(cwd, vfs.Home+"/") {
		cwd = "~" + strings.TrimPrefix(cwd, vfs.Home)
	}

	var buf bytes.Buffer
	data := struct{ User, Host, Cwd string }{s.opts.User, s.opts.Host, cwd}
	if err := s.prompt.Execute(&buf, data); err != nil {
		return "$ "
	}
	return buf.String()
}

// Exec runs one command line.
func (s *Shell) Exec(line string) Result {
	return s.ExecContext(context.Background(), line)
}

// ExecContext runs one command line. ctx bounds commands that open URLs.
func (s *Shell) ExecContext(ctx context.Context, line string) Result {
	args, err := splitArgs(line)
	if err != nil {
		return Result{Output: err.Error()}
	}
	if len(args) == 0 {
		return Result{}
	}

	s.mu.Lock()
	s.history = append(s.history, strings.TrimSpace(line))
	s.mu.Unlock()

	cmd := lookup(args[0])
	if cmd == nil {
		return Result{Output: fmt.Sprintf("command not found: %s", args[0])}
	}

	s.logger.Debug("shell command", "cmd", cmd.Name, "args", args[1:])
	return cmd.Run(ctx, s, args[1:])
}

// splitArgs splits a line on whitespace. Double or single quotes group words.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inWord  bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, ErrUnterminatedQuote
	}
	if inWord {
		args = append(args, current.String())
	}
	return args, nil
}
