package portfolio

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTagColor(t *testing.T) {
	assert.Equal(t, tagBlue, TagColor("Go"))
	assert.Equal(t, tagGray, TagColor("go"))
	assert.Equal(t, tagGray, TagColor("COBOL"))
}

func TestTypeAndStatusColor(t *testing.T) {
	assert.Equal(t, tagPurple, TypeColor("Library"))
	assert.Equal(t, tagGray, TypeColor("unknown"))
	assert.Equal(t, tagYellow, StatusColor("Ongoing"))
	assert.Equal(t, tagRed, StatusColor("CONFIDENTIAL"))
	assert.Equal(t, tagGray, StatusColor(""))
}

func TestTag_Style(t *testing.T) {
	style := StatusColor("completed").Style()
	assert.Equal(t, lipgloss.Color("#166534"), style.GetForeground())
	assert.Equal(t, lipgloss.Color("#bbf7d0"), style.GetBackground())
}
