package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// JSONFormatter formats windows as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes windows as a JSON array. An empty list is written as [].
func (f *JSONFormatter) Format(w io.Writer, windows []model.Window) error {
	if windows == nil {
		windows = []model.Window{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(windows)
}

// FormatSingle writes a single window as JSON.
func (f *JSONFormatter) FormatSingle(w io.Writer, win *model.Window) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(win)
}
