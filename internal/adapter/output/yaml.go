package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// YAMLFormatter formats windows as a YAML sequence.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes windows as YAML.
func (f *YAMLFormatter) Format(w io.Writer, windows []model.Window) error {
	if windows == nil {
		windows = []model.Window{}
	}
	return Encode(w, windows)
}

// Encode writes any value as YAML with two-space indentation.
func Encode(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
