package audio

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// RepeatMode decides which song follows the current one when it finishes.
type RepeatMode string

const (
	RepeatAll     RepeatMode = "repeat"
	RepeatOne     RepeatMode = "repeat_one"
	RepeatShuffle RepeatMode = "shuffle"
)

// ParseRepeatMode validates a repeat mode name.
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch m := RepeatMode(strings.ToLower(strings.TrimSpace(s))); m {
	case RepeatAll, RepeatOne, RepeatShuffle:
		return m, nil
	case "":
		return RepeatAll, nil
	default:
		return "", fmt.Errorf("unknown repeat mode %q", s)
	}
}

// Next returns the mode that follows m when cycling through modes.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatAll:
		return RepeatOne
	case RepeatOne:
		return RepeatShuffle
	default:
		return RepeatAll
	}
}

// Playlist is an ordered list of songs with a cursor. It is safe for
// concurrent use.
type Playlist struct {
	mu    sync.Mutex
	songs []model.Song
	index int
	mode  RepeatMode
	rng   *rand.Rand
}

// NewPlaylist creates a playlist positioned on the first song.
func NewPlaylist(songs []model.Song, mode RepeatMode) *Playlist {
	return newPlaylist(songs, mode, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func newPlaylist(songs []model.Song, mode RepeatMode, rng *rand.Rand) *Playlist {
	if mode == "" {
		mode = RepeatAll
	}
	return &Playlist{
		songs: append([]model.Song(nil), songs...),
		mode:  mode,
		rng:   rng,
	}
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.songs)
}

// Songs returns a copy of the songs.
func (p *Playlist) Songs() []model.Song {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Song(nil), p.songs...)
}

// Index returns the cursor position.
func (p *Playlist) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Mode returns the repeat mode.
func (p *Playlist) Mode() RepeatMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// SetMode changes the repeat mode.
func (p *Playlist) SetMode(mode RepeatMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
}

// Current returns the song under the cursor.
func (p *Playlist) Current() (model.Song, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.songs) == 0 {
		return model.Song{}, false
	}
	return p.songs[p.index], true
}

// Select moves the cursor to index i.
func (p *Playlist) Select(i int) (model.Song, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.songs) {
		return model.Song{}, false
	}
	p.index = i
	return p.songs[i], true
}

// Next moves to the song that plays after the current one finishes:
// repeat wraps around, repeat_one stays put and shuffle picks a different
// random song.
func (p *Playlist) Next() (model.Song, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.songs) == 0 {
		return model.Song{}, false
	}

	switch p.mode {
	case RepeatOne:
	case RepeatShuffle:
		p.index = p.shuffleLocked()
	default:
		p.index = (p.index + 1) % len(p.songs)
	}
	return p.songs[p.index], true
}

// Skip moves forward on user request. Unlike Next it leaves the song even in
// repeat_one mode.
func (p *Playlist) Skip() (model.Song, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.songs) == 0 {
		return model.Song{}, false
	}

	if p.mode == RepeatShuffle {
		p.index = p.shuffleLocked()
	} else {
		p.index = (p.index + 1) % len(p.songs)
	}
	return p.songs[p.index], true
}

// Prev moves back one song, wrapping to the end.
func (p *Playlist) Prev() (model.Song, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.songs) == 0 {
		return model.Song{}, false
	}
	p.index = (p.index - 1 + len(p.songs)) % len(p.songs)
	return p.songs[p.index], true
}

func (p *Playlist) shuffleLocked() int {
	n := len(p.songs)
	if n < 2 {
		return p.index
	}
	// Draw from the n-1 other songs.
	i := p.rng.IntN(n - 1)
	if i >= p.index {
		i++
	}
	return i
}
