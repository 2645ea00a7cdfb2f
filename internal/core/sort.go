// Package core provides filtering, sorting, and lookup over window lists.
package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// SortField represents a field to sort by.
type SortField string

const (
	SortByZ      SortField = "z"
	SortByOpened SortField = "opened"
	SortByKind   SortField = "kind"
)

// SortOrder represents ascending or descending order.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortOptions specifies sorting criteria.
type SortOptions struct {
	Field SortField // Field to sort by
	Order SortOrder // Sort order (asc/desc)
}

// DefaultSortOptions returns default sort options (front to back).
func DefaultSortOptions() SortOptions {
	return SortOptions{
		Field: SortByZ,
		Order: SortDesc,
	}
}

// Sort sorts windows in place based on the provided options.
func Sort(windows []model.Window, opts SortOptions) {
	if len(windows) == 0 {
		return
	}

	sort.SliceStable(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]
		var less bool

		switch opts.Field {
		case SortByOpened:
			if a.OpenedAt.Equal(b.OpenedAt) {
				return false
			}
			less = a.OpenedAt.Before(b.OpenedAt)
		case SortByKind:
			if a.Kind == b.Kind {
				return false
			}
			less = dockIndex(a.Kind) < dockIndex(b.Kind)
		default:
			if a.ZIndex == b.ZIndex {
				return false
			}
			less = a.ZIndex < b.ZIndex
		}

		if opts.Order == SortDesc {
			return !less
		}
		return less
	})
}

// dockIndex is the kind's position in the dock.
func dockIndex(kind model.Kind) int {
	for i, k := range model.AllKinds() {
		if k == kind {
			return i
		}
	}
	return len(model.AllKinds())
}

// ParseSortField parses a sort field string. Empty means z.
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "z", "zindex", "z_index", "stack":
		return SortByZ, nil
	case "opened", "time", "t":
		return SortByOpened, nil
	case "kind", "k", "dock":
		return SortByKind, nil
	default:
		return "", fmt.Errorf("invalid sort field %q (z, opened, kind)", s)
	}
}

// ParseSortOrder parses a sort order string. Empty means descending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "a":
		return SortAsc, nil
	case "", "desc", "descending", "d":
		return SortDesc, nil
	default:
		return "", fmt.Errorf("invalid sort order %q (asc, desc)", s)
	}
}
