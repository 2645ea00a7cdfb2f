package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupportedFormat is returned for audio files beep cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Player streams one song at a time to the speaker.
type Player struct {
	mu     sync.Mutex
	logger *slog.Logger

	// Volume control (0.0 to 1.0)
	volume float64

	initialized bool
	sampleRate  beep.SampleRate

	// Current track
	stream  beep.StreamSeekCloser
	ctrl    *beep.Ctrl
	vol     *effects.Volume
	current string
	gen     uint64
}

// NewPlayer creates a new audio player.
func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}

	return &Player{
		logger:     logger,
		volume:     1.0,
		sampleRate: beep.SampleRate(44100),
	}
}

// SetVolume sets the playback volume (0.0 to 1.0). It applies to the
// current track immediately.
func (p *Player) SetVolume(volume float64) {
	volume = min(max(volume, 0), 1)

	p.mu.Lock()
	p.volume = volume
	vol := p.vol
	p.mu.Unlock()

	if vol != nil {
		speaker.Lock()
		vol.Volume = volumeExponent(volume)
		vol.Silent = volume == 0
		speaker.Unlock()
	}
	p.logger.Debug("volume set", "volume", volume)
}

// Volume returns the current volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Current returns the path of the track being played, if any.
func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Play stops the current track and starts path. onFinish, if set, runs on
// its own goroutine when the track plays to the end; it does not run when
// the track is stopped or replaced.
func (p *Player) Play(path string, onFinish func()) error {
	path = expandPath(path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	stream, format, err := decode(f, path)
	if err != nil {
		_ = f.Close()
		return err
	}

	if err := p.ensureInitialized(format.SampleRate); err != nil {
		_ = stream.Close()
		return err
	}

	p.Stop()

	p.mu.Lock()
	p.gen++
	gen := p.gen
	volume := p.volume
	sampleRate := p.sampleRate
	p.mu.Unlock()

	var streamer beep.Streamer = stream
	if format.SampleRate != sampleRate {
		streamer = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	vol := &effects.Volume{
		Streamer: ctrl,
		Base:     2,
		Volume:   volumeExponent(volume),
		Silent:   volume == 0,
	}

	p.mu.Lock()
	p.stream = stream
	p.ctrl = ctrl
	p.vol = vol
	p.current = path
	p.mu.Unlock()

	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		// Runs with the speaker lock held.
		go p.finished(gen, onFinish)
	})))

	p.logger.Debug("playing", "path", path, "sample_rate", format.SampleRate)
	return nil
}

func (p *Player) finished(gen uint64, onFinish func()) {
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	p.releaseLocked()
	p.mu.Unlock()

	if onFinish != nil {
		onFinish()
	}
}

// TogglePause pauses or resumes the current track and reports whether it
// is now paused.
func (p *Player) TogglePause() bool {
	p.mu.Lock()
	ctrl := p.ctrl
	p.mu.Unlock()

	if ctrl == nil {
		return false
	}

	speaker.Lock()
	ctrl.Paused = !ctrl.Paused
	paused := ctrl.Paused
	speaker.Unlock()
	return paused
}

// Paused reports whether the current track is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	ctrl := p.ctrl
	p.mu.Unlock()

	if ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return ctrl.Paused
}

// Stop ends the current track without running its finish callback.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return
	}
	p.gen++
	if p.initialized {
		speaker.Clear()
	}
	p.releaseLocked()
}

func (p *Player) releaseLocked() {
	if p.stream != nil {
		_ = p.stream.Close()
	}
	p.stream = nil
	p.ctrl = nil
	p.vol = nil
	p.current = ""
}

// ensureInitialized initializes the speaker if not already done.
func (p *Player) ensureInitialized(sampleRate beep.SampleRate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Use a reasonable buffer size for low latency
	bufferSize := sampleRate.N(time.Millisecond * 100)

	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	p.sampleRate = sampleRate
	p.initialized = true
	p.logger.Debug("speaker initialized", "sample_rate", sampleRate)
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
	p.logger.Debug("audio player closed")
}

// decode picks a decoder from the file extension.
func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
		err    error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to decode audio: %w", err)
	}
	return stream, format, nil
}

// volumeExponent converts a linear volume (0-1) to the base-2 exponent
// effects.Volume expects: 1 = 0, 0.5 = -1, 0.25 = -2.
func volumeExponent(volume float64) float64 {
	if volume <= 0 {
		return -100 // Effectively silent
	}
	return math.Log2(volume)
}

// expandPath expands ~ to home directory.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
