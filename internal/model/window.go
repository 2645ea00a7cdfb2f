// Package model defines the core data structures for deskfolio.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind identifies the application a window hosts.
type Kind string

// Application kinds, in dock order.
const (
	KindTerminal Kind = "terminal"
	KindSafari   Kind = "safari"
	KindBlog     Kind = "blog"
	KindProjects Kind = "projects"
	KindResume   Kind = "resume"
	KindBooks    Kind = "books"
	KindGitHub   Kind = "github"
	KindContact  Kind = "contact"
	KindGames    Kind = "games"
)

var allKinds = []Kind{
	KindTerminal,
	KindSafari,
	KindBlog,
	KindProjects,
	KindResume,
	KindBooks,
	KindGitHub,
	KindContact,
	KindGames,
}

// KindTitles maps kinds to the labels shown in the dock.
var KindTitles = map[Kind]string{
	KindTerminal: "Terminal",
	KindSafari:   "Safari",
	KindBlog:     "Blog",
	KindProjects: "Projects",
	KindResume:   "Resume",
	KindBooks:    "Books",
	KindGitHub:   "GitHub",
	KindContact:  "Contact",
	KindGames:    "Games",
}

// ErrUnknownKind is returned when parsing a name that is not a known kind.
var ErrUnknownKind = errors.New("unknown application kind")

// AllKinds returns every kind in dock order.
func AllKinds() []Kind {
	kinds := make([]Kind, len(allKinds))
	copy(kinds, allKinds)
	return kinds
}

// ParseKind parses a kind name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Large reports whether the kind gets the larger default footprint.
func (k Kind) Large() bool {
	switch k {
	case KindResume, KindBooks, KindContact, KindGames:
		return true
	default:
		return false
	}
}

// External reports whether opening the kind navigates away instead of
// creating a window.
func (k Kind) External() bool {
	return k == KindGitHub
}

// Title returns the human-readable label for the kind.
func (k Kind) Title() string {
	if t, ok := KindTitles[k]; ok {
		return t
	}
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}

// Point is a top-left coordinate in viewport pixels.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Centered returns the position that centers s inside viewport. Positions
// are whole pixels: odd remainders truncate toward zero, and a window larger
// than the viewport gets a negative offset.
func (s Size) Centered(viewport Size) Point {
	return Point{
		X: (viewport.Width - s.Width) / 2,
		Y: (viewport.Height - s.Height) / 2,
	}
}

// Window is a snapshot of one open application window.
// Snapshots are values; the window manager never mutates one it has handed out.
type Window struct {
	ID        string    `json:"id" yaml:"id"`
	Kind      Kind      `json:"kind" yaml:"kind"`
	Minimized bool      `json:"minimized" yaml:"minimized"`
	Maximized bool      `json:"maximized" yaml:"maximized"`
	Position  Point     `json:"position" yaml:"position"`
	Size      Size      `json:"size" yaml:"size"`
	ZIndex    int       `json:"z_index" yaml:"z_index"`
	OpenedAt  time.Time `json:"opened_at" yaml:"opened_at"`
}

// State returns the window's layout state name: minimized, maximized or restored.
func (w Window) State() string {
	switch {
	case w.Minimized:
		return "minimized"
	case w.Maximized:
		return "maximized"
	default:
		return "restored"
	}
}

// Title returns the label of the window's kind.
func (w Window) Title() string {
	return w.Kind.Title()
}
