package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// IDsFormatter outputs just the window IDs, one per line.
// Useful for piping to other commands (e.g., deskfolio run close:<id>).
type IDsFormatter struct{}

// NewIDsFormatter creates a new IDs formatter.
func NewIDsFormatter() *IDsFormatter {
	return &IDsFormatter{}
}

// Format writes window IDs to the writer, one per line.
func (f *IDsFormatter) Format(w io.Writer, windows []model.Window) error {
	for _, win := range windows {
		if _, err := fmt.Fprintln(w, win.ID); err != nil {
			return err
		}
	}
	return nil
}
