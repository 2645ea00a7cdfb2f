// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/wm"
)

// Default configuration values.
const (
	DefaultWidth      = 1920
	DefaultHeight     = 1080
	DefaultStandard   = "900x600"
	DefaultLarge      = "1000x700"
	DefaultRestore    = "600x400"
	DefaultPrompt     = "{{.User}}@{{.Host}} {{.Cwd}} $ "
	DefaultWrapWidth  = 70
	DefaultUser       = "guest"
	DefaultHost       = "deskfolio"
	DefaultVolume     = 80
	DefaultRepeatMode = "repeat"
	portfolioFileName = "portfolio.yaml"
	sessionFileName   = "session.json"
	configDirName     = "deskfolio"
)

// ErrInvalidSize is returned for size strings not of the form WIDTHxHEIGHT.
var ErrInvalidSize = errors.New("size must be WIDTHxHEIGHT with positive integers")

// Config represents the deskfolio configuration.
type Config struct {
	Desktop   DesktopConfig   `toml:"desktop"`
	Windows   WindowsConfig   `toml:"windows"`
	Links     LinksConfig     `toml:"links"`
	Portfolio PortfolioConfig `toml:"portfolio"`
	Terminal  TerminalConfig  `toml:"terminal"`
	Browser   BrowserConfig   `toml:"browser"`
	Music     MusicConfig     `toml:"music"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// DesktopConfig holds the viewport and stacking settings.
type DesktopConfig struct {
	Width         int `toml:"width"`           // Viewport width in pixels
	Height        int `toml:"height"`          // Viewport height in pixels
	InitialZIndex int `toml:"initial_z_index"` // First z-index handed to a window
}

// WindowsConfig holds the default window footprints as WIDTHxHEIGHT.
type WindowsConfig struct {
	Standard string `toml:"standard"`
	Large    string `toml:"large"`   // resume, books, contact, games
	Restore  string `toml:"restore"` // size after leaving maximized
}

// LinksConfig holds external link overrides.
type LinksConfig struct {
	GitHub string `toml:"github"` // Empty = portfolio social link
}

// PortfolioConfig locates the portfolio content file.
type PortfolioConfig struct {
	Path  string `toml:"path"`  // YAML or JSON; empty = data dir default
	Watch bool   `toml:"watch"` // Reload on change
}

// TerminalConfig holds settings for the terminal application.
type TerminalConfig struct {
	Prompt    string `toml:"prompt"`
	WrapWidth int    `toml:"wrap_width"`
	User      string `toml:"user"`
	Host      string `toml:"host"`
}

// BrowserConfig holds URL opening settings.
type BrowserConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// MusicConfig holds music player settings.
type MusicConfig struct {
	Volume int    `toml:"volume"` // 0-100
	Repeat string `toml:"repeat"` // repeat, repeat_one, shuffle
}

// ClipboardConfig holds clipboard settings (TUI only).
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Desktop: DesktopConfig{
			Width:         DefaultWidth,
			Height:        DefaultHeight,
			InitialZIndex: wm.DefaultInitialZIndex,
		},
		Windows: WindowsConfig{
			Standard: DefaultStandard,
			Large:    DefaultLarge,
			Restore:  DefaultRestore,
		},
		Portfolio: PortfolioConfig{
			Watch: true,
		},
		Terminal: TerminalConfig{
			Prompt:    DefaultPrompt,
			WrapWidth: DefaultWrapWidth,
			User:      DefaultUser,
			Host:      DefaultHost,
		},
		Music: MusicConfig{
			Volume: DefaultVolume,
			Repeat: DefaultRepeatMode,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, configDirName, "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, configDirName)
}

// PortfolioPath returns the configured portfolio path, or the default one in
// the data directory.
func (c *Config) PortfolioPath() string {
	if c.Portfolio.Path != "" {
		return expandHome(c.Portfolio.Path)
	}
	return filepath.Join(DataPath(), portfolioFileName)
}

// SessionPath returns the path to the saved desktop session.
func SessionPath() string {
	return filepath.Join(DataPath(), sessionFileName)
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	if c.Desktop.Width <= 0 || c.Desktop.Height <= 0 {
		return fmt.Errorf("desktop size %dx%d: %w", c.Desktop.Width, c.Desktop.Height, ErrInvalidSize)
	}
	for name, s := range map[string]string{
		"windows.standard": c.Windows.Standard,
		"windows.large":    c.Windows.Large,
		"windows.restore":  c.Windows.Restore,
	} {
		if s == "" {
			continue
		}
		if _, err := ParseSize(s); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if c.Music.Volume < 0 || c.Music.Volume > 100 {
		return fmt.Errorf("music.volume must be between 0 and 100, got %d", c.Music.Volume)
	}
	return nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// WindowOptions converts the configuration into the window manager's layout
// policy. githubFallback is used when no GitHub link is configured.
func (c *Config) WindowOptions(githubFallback string) wm.Options {
	opts := wm.DefaultOptions()
	if c.Desktop.InitialZIndex != 0 {
		opts.InitialZIndex = c.Desktop.InitialZIndex
	}
	if s, err := ParseSize(c.Windows.Standard); err == nil {
		opts.StandardSize = s
	}
	if s, err := ParseSize(c.Windows.Large); err == nil {
		opts.LargeSize = s
	}
	if s, err := ParseSize(c.Windows.Restore); err == nil {
		opts.RestoreSize = s
	}
	switch {
	case c.Links.GitHub != "":
		opts.GitHubURL = c.Links.GitHub
	case githubFallback != "":
		opts.GitHubURL = githubFallback
	}
	return opts
}

// ParseSize parses a WIDTHxHEIGHT string such as "900x600".
func ParseSize(s string) (model.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return model.Size{}, fmt.Errorf("%q: %w", s, ErrInvalidSize)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width <= 0 {
		return model.Size{}, fmt.Errorf("%q: %w", s, ErrInvalidSize)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height <= 0 {
		return model.Size{}, fmt.Errorf("%q: %w", s, ErrInvalidSize)
	}
	return model.Size{Width: width, Height: height}, nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	path := DataPath()
	if path == "" {
		return errors.New("unable to determine data directory")
	}
	return os.MkdirAll(path, 0755)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
