package vfs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWrapWidth is the terminal text width.
const DefaultWrapWidth = 70

// WrapText breaks text into lines of at most width cells on word boundaries.
// Words longer than width get a line of their own.
func WrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		wordWidth := lipgloss.Width(word)
		switch {
		case lineWidth == 0:
			line.WriteString(word)
			lineWidth = wordWidth
		case lineWidth+1+wordWidth <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + wordWidth
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineWidth = wordWidth
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
