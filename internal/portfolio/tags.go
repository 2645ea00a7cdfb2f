package portfolio

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tag is a foreground/background pair for a badge.
type Tag struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
}

// Style returns the lipgloss style for the badge.
func (t Tag) Style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Background).
		Padding(0, 1)
}

var (
	tagGray   = Tag{Foreground: "#1f2937", Background: "#e5e7eb"}
	tagBlue   = Tag{Foreground: "#1e40af", Background: "#bfdbfe"}
	tagGreen  = Tag{Foreground: "#166534", Background: "#bbf7d0"}
	tagOrange = Tag{Foreground: "#9a3412", Background: "#fed7aa"}
	tagCyan   = Tag{Foreground: "#155e75", Background: "#a5f3fc"}
	tagEm     = Tag{Foreground: "#065f46", Background: "#a7f3d0"}
	tagRed    = Tag{Foreground: "#991b1b", Background: "#fecaca"}
	tagPurple = Tag{Foreground: "#6b21a8", Background: "#e9d5ff"}
	tagYellow = Tag{Foreground: "#854d0e", Background: "#fef08a"}
)

// Technologies without an entry stay gray.
var techTags = map[string]Tag{
	"Go":         tagBlue,
	"macOS":      tagGray,
	"TouchID":    tagGreen,
	"Svelte":     tagOrange,
	"React":      tagCyan,
	"Vue":        tagEm,
	"Node.js":    tagGreen,
	"Java":       tagRed,
	"C#":         tagPurple,
	"Ruby":       tagRed,
	"HTML":       tagOrange,
	"CSS":        tagBlue,
	"Kubernetes": tagBlue,
	"AWS":        tagYellow,
	"Azure":      tagBlue,
	"GCP":        tagRed,
}

var typeTags = map[string]Tag{
	"library":     tagPurple,
	"application": tagGreen,
	"framework":   tagBlue,
	"tool":        tagYellow,
}

var statusTags = map[string]Tag{
	"completed":    tagGreen,
	"ongoing":      tagYellow,
	"confidential": tagRed,
}

// TagColor returns the badge colors for a technology. Names are matched exactly.
func TagColor(tech string) Tag {
	if t, ok := techTags[tech]; ok {
		return t
	}
	return tagGray
}

// TypeColor returns the badge colors for a project type, ignoring case.
func TypeColor(typ string) Tag {
	if t, ok := typeTags[strings.ToLower(typ)]; ok {
		return t
	}
	return tagGray
}

// StatusColor returns the badge colors for a project status, ignoring case.
func StatusColor(status string) Tag {
	if t, ok := statusTags[strings.ToLower(status)]; ok {
		return t
	}
	return tagGray
}
