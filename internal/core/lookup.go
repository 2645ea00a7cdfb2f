package core

import (
	"strings"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// LookupByID finds a window by its ID.
// Returns nil if not found.
func LookupByID(windows []model.Window, id string) *model.Window {
	for i := range windows {
		if windows[i].ID == id {
			return &windows[i]
		}
	}
	return nil
}

// LookupByIndex finds a window by its index (1-based for user-friendliness).
// Returns nil if index is out of bounds.
func LookupByIndex(windows []model.Window, index int) *model.Window {
	idx := index - 1
	if idx < 0 || idx >= len(windows) {
		return nil
	}
	return &windows[idx]
}

// Search finds windows whose title or ID contains term.
// Case-insensitive substring match.
func Search(windows []model.Window, term string) []model.Window {
	if term == "" {
		return windows
	}

	term = strings.ToLower(term)
	var result []model.Window

	for _, w := range windows {
		if strings.Contains(strings.ToLower(w.Title()), term) ||
			strings.Contains(strings.ToLower(w.ID), term) {
			result = append(result, w)
		}
	}

	return result
}
