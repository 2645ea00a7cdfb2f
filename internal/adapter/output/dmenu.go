package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// DmenuFormatter formats windows for dmenu/rofi/fuzzel pickers.
type DmenuFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewDmenuFormatter creates a new dmenu formatter.
func NewDmenuFormatter(opts FormatterOptions) *DmenuFormatter {
	f := &DmenuFormatter{opts: opts}

	if opts.Template != "" {
		tmpl, err := template.New("dmenu").Funcs(templateFuncs(opts)).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes windows in dmenu format (one per line).
func (f *DmenuFormatter) Format(w io.Writer, windows []model.Window) error {
	for i := range windows {
		line := f.formatLine(i+1, &windows[i])
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatLine formats a single window line.
func (f *DmenuFormatter) formatLine(index int, win *model.Window) string {
	if f.template != nil {
		var buf strings.Builder
		if err := f.template.Execute(&buf, newTemplateData(f.opts, index, win)); err == nil {
			return buf.String()
		}
	}

	// Default format: [index] [time] title | state | id
	var parts []string
	sep := f.opts.Separator
	if sep == "" {
		sep = " | "
	}

	if f.opts.ShowIndex {
		parts = append(parts, fmt.Sprintf("%d", index))
	}

	if f.opts.ShowTime {
		parts = append(parts, relativeTime(win.OpenedAt, f.opts.now()))
	}

	parts = append(parts, win.Title(), win.State(), win.ID)

	return strings.Join(parts, sep)
}

// templateData provides data for custom templates.
type templateData struct {
	Index        int
	Window       *model.Window
	RelativeTime string
}

func newTemplateData(opts FormatterOptions, index int, win *model.Window) templateData {
	return templateData{
		Index:        index,
		Window:       win,
		RelativeTime: relativeTime(win.OpenedAt, opts.now()),
	}
}

// templateFuncs returns template helper functions.
func templateFuncs(opts FormatterOptions) template.FuncMap {
	return template.FuncMap{
		"truncate": func(s string, maxLen int) string {
			if maxLen <= 0 || len(s) <= maxLen {
				return s
			}
			if maxLen <= 3 {
				return s[:maxLen]
			}
			return s[:maxLen-3] + "..."
		},
		"reltime": func(t time.Time) string {
			return relativeTime(t, opts.now())
		},
		"stateIcon": func(state string) string {
			switch state {
			case "minimized":
				return "_"
			case "maximized":
				return "+"
			default:
				return "-"
			}
		},
	}
}

// relativeTime returns a human-readable relative time string.
func relativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
