package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// PlainFormatter formats windows as plain text.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	f := &PlainFormatter{opts: opts}

	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs(opts)).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes windows as plain text, one block per window.
func (f *PlainFormatter) Format(w io.Writer, windows []model.Window) error {
	for i := range windows {
		if err := f.formatWindow(w, i+1, &windows[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *PlainFormatter) formatWindow(w io.Writer, index int, win *model.Window) error {
	if f.template != nil {
		if err := f.template.Execute(w, newTemplateData(f.opts, index, win)); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	var sb strings.Builder

	if f.opts.ShowIndex {
		sb.WriteString(fmt.Sprintf("[%d] ", index))
	}

	sb.WriteString(fmt.Sprintf("%s <%s> %s", win.Title(), win.ID, win.State()))

	if f.opts.ShowTime {
		sb.WriteString(fmt.Sprintf(" (%s)", relativeTime(win.OpenedAt, f.opts.now())))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("    z=%d at %d,%d size %s\n", win.ZIndex, win.Position.X, win.Position.Y, win.Size))

	_, err := w.Write([]byte(sb.String()))
	return err
}

// FormatField outputs a specific field from a window.
func FormatField(win *model.Window, field string) string {
	switch strings.ToLower(field) {
	case "id":
		return win.ID
	case "kind":
		return string(win.Kind)
	case "title":
		return win.Title()
	case "state":
		return win.State()
	case "z", "z_index", "zindex":
		return fmt.Sprintf("%d", win.ZIndex)
	case "position", "pos":
		return fmt.Sprintf("%d,%d", win.Position.X, win.Position.Y)
	case "size":
		return win.Size.String()
	default:
		return win.ID
	}
}
