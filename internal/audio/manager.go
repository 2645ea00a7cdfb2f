package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// ErrNotPlayable is returned for songs with neither a local file nor a
// YouTube id.
var ErrNotPlayable = errors.New("song has no playable source")

// ErrEmptyPlaylist is returned when there is nothing to play.
var ErrEmptyPlaylist = errors.New("playlist is empty")

// Output plays audio files. *Player is the speaker implementation.
type Output interface {
	Play(path string, onFinish func()) error
	Stop()
	TogglePause() bool
	SetVolume(volume float64)
	Close()
}

// URLOpener opens songs that are only available online.
type URLOpener interface {
	OpenURL(ctx context.Context, url string) error
}

// TrackHandler is called when a song starts.
type TrackHandler func(song model.Song)

// YouTubeURL returns the watch URL for a video id.
func YouTubeURL(id string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
}

// Manager drives a playlist through an output, advancing when songs end.
type Manager struct {
	mu       sync.Mutex
	logger   *slog.Logger
	playlist *Playlist
	output   Output
	opener   URLOpener
	onTrack  TrackHandler
	playing  bool
}

// NewManager creates a music manager. opener may be nil, in which case
// YouTube-only songs cannot be played.
func NewManager(playlist *Playlist, output Output, opener URLOpener, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:   logger,
		playlist: playlist,
		output:   output,
		opener:   opener,
	}
}

// SetTrackHandler sets the handler called when a song starts.
func (m *Manager) SetTrackHandler(handler TrackHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onTrack = handler
}

// Playlist returns the managed playlist.
func (m *Manager) Playlist() *Playlist {
	return m.playlist
}

// Playing reports whether a local file is being played.
func (m *Manager) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// NowPlaying returns the song under the playlist cursor.
func (m *Manager) NowPlaying() (model.Song, bool) {
	return m.playlist.Current()
}

// Play plays the song under the cursor.
func (m *Manager) Play(ctx context.Context) error {
	song, ok := m.playlist.Current()
	if !ok {
		return ErrEmptyPlaylist
	}
	return m.play(ctx, song)
}

// Next skips to the following song and plays it.
func (m *Manager) Next(ctx context.Context) error {
	song, ok := m.playlist.Skip()
	if !ok {
		return ErrEmptyPlaylist
	}
	return m.play(ctx, song)
}

// Prev goes back one song and plays it.
func (m *Manager) Prev(ctx context.Context) error {
	song, ok := m.playlist.Prev()
	if !ok {
		return ErrEmptyPlaylist
	}
	return m.play(ctx, song)
}

// Select plays the song at index i.
func (m *Manager) Select(ctx context.Context, i int) error {
	song, ok := m.playlist.Select(i)
	if !ok {
		return fmt.Errorf("no song at index %d", i)
	}
	return m.play(ctx, song)
}

// CycleMode switches to the next repeat mode and returns it.
func (m *Manager) CycleMode() RepeatMode {
	mode := m.playlist.Mode().Next()
	m.playlist.SetMode(mode)
	m.logger.Debug("repeat mode changed", "mode", mode)
	return mode
}

// SetVolume sets the volume from a 0-100 percentage.
func (m *Manager) SetVolume(percent int) {
	percent = min(max(percent, 0), 100)
	m.output.SetVolume(float64(percent) / 100.0)
}

// TogglePause pauses or resumes playback and reports whether it is paused.
func (m *Manager) TogglePause() bool {
	return m.output.TogglePause()
}

// Stop ends playback.
func (m *Manager) Stop() {
	m.mu.Lock()
	m.playing = false
	m.mu.Unlock()
	m.output.Stop()
}

// Close stops playback and releases the output.
func (m *Manager) Close() {
	m.Stop()
	m.output.Close()
	m.logger.Debug("music manager stopped")
}

// play starts song from its local file, falling back to YouTube.
func (m *Manager) play(ctx context.Context, song model.Song) error {
	var errs []error

	if song.Src != "" {
		err := m.output.Play(song.Src, m.finished)
		if err == nil {
			m.started(song, true)
			return nil
		}
		m.logger.Warn("failed to play song", "song", song.Label(), "src", song.Src, "error", err)
		errs = append(errs, err)
	}

	if song.YouTubeID != "" && m.opener != nil {
		m.output.Stop()
		if err := m.opener.OpenURL(ctx, YouTubeURL(song.YouTubeID)); err != nil {
			return errors.Join(append(errs, err)...)
		}
		m.started(song, false)
		return nil
	}

	if len(errs) == 0 {
		return fmt.Errorf("%s: %w", song.Label(), ErrNotPlayable)
	}
	return errors.Join(errs...)
}

func (m *Manager) started(song model.Song, local bool) {
	m.mu.Lock()
	m.playing = local
	handler := m.onTrack
	m.mu.Unlock()

	m.logger.Info("now playing", "song", song.Label(), "local", local)
	if handler != nil {
		handler(song)
	}
}

// finished advances according to the repeat mode when a local song ends.
func (m *Manager) finished() {
	m.mu.Lock()
	m.playing = false
	m.mu.Unlock()

	song, ok := m.playlist.Next()
	if !ok {
		return
	}
	if err := m.play(context.Background(), song); err != nil {
		m.logger.Warn("failed to advance playlist", "error", err)
	}
}
