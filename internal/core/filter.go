package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// Window states accepted by FilterOptions.State.
const (
	StateRestored  = "restored"
	StateMinimized = "minimized"
	StateMaximized = "maximized"
	StateVisible   = "visible" // restored or maximized
)

// FilterOptions specifies criteria for filtering windows.
type FilterOptions struct {
	Kind  model.Kind    // Exact kind ("" = any)
	State string        // One of the State constants ("" = any)
	Since time.Duration // Only windows opened within this long of Now (0 = all)
	Limit int           // Maximum results (0 = unlimited)
	Now   time.Time     // Reference time for Since (zero = time.Now)
}

// Filter filters windows based on the provided options.
func Filter(windows []model.Window, opts FilterOptions) []model.Window {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	result := make([]model.Window, 0, len(windows))

	for _, w := range windows {
		if opts.Since > 0 && w.OpenedAt.Before(now.Add(-opts.Since)) {
			continue
		}

		if opts.Kind != "" && w.Kind != opts.Kind {
			continue
		}

		if !matchState(w, opts.State) {
			continue
		}

		result = append(result, w)
	}

	if opts.Limit > 0 && len(result) > opts.Limit {
		result = result[:opts.Limit]
	}

	return result
}

func matchState(w model.Window, state string) bool {
	switch state {
	case "":
		return true
	case StateVisible:
		return !w.Minimized
	default:
		return w.State() == state
	}
}

// ParseState validates a state filter.
func ParseState(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", StateRestored, StateMinimized, StateMaximized, StateVisible:
		return s, nil
	default:
		return "", fmt.Errorf("invalid state %q (restored, minimized, maximized, visible)", s)
	}
}

// ParseDuration parses a duration string with extended formats.
// Supports: 48h, 7d, 1w, 0 (all time)
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if s == "0" || s == "" {
		return 0, nil
	}

	if daysStr, found := strings.CutSuffix(s, "d"); found {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	if weeksStr, found := strings.CutSuffix(s, "w"); found {
		weeks, err := strconv.Atoi(weeksStr)
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}
		return time.Duration(weeks) * 7 * 24 * time.Hour, nil
	}

	return time.ParseDuration(s)
}
