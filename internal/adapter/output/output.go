// Package output provides output formatters for window snapshots.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// Formatter formats windows for output.
type Formatter interface {
	// Format writes formatted windows to the writer.
	Format(w io.Writer, windows []model.Window) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatDmenu FormatType = "dmenu"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatPlain FormatType = "plain"
	FormatIDs   FormatType = "ids"
)

// FormatTypes lists every supported format.
var FormatTypes = []FormatType{FormatPlain, FormatJSON, FormatYAML, FormatDmenu, FormatIDs}

// ParseFormatType validates a format name.
func ParseFormatType(s string) (FormatType, error) {
	f := FormatType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range FormatTypes {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter()
	case FormatDmenu:
		return NewDmenuFormatter(opts)
	case FormatIDs:
		return NewIDsFormatter()
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template  string           // Custom template for dmenu/plain format
	ShowIndex bool             // Show 1-based index prefix
	ShowTime  bool             // Show time since the window opened
	Separator string           // Field separator for dmenu format
	Now       func() time.Time // Reference time for relative times (default time.Now)
}

// DefaultFormatterOptions returns sensible defaults.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowIndex: true,
		ShowTime:  true,
		Separator: " | ",
	}
}

func (o FormatterOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
