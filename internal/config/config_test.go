package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/wm"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1920, cfg.Desktop.Width)
	assert.Equal(t, 1080, cfg.Desktop.Height)
	assert.Equal(t, 10, cfg.Desktop.InitialZIndex)
	assert.Equal(t, "900x600", cfg.Windows.Standard)
	assert.Equal(t, "1000x700", cfg.Windows.Large)
	assert.Equal(t, "600x400", cfg.Windows.Restore)
	assert.True(t, cfg.Portfolio.Watch)
	assert.Equal(t, 70, cfg.Terminal.WrapWidth)
	assert.Equal(t, 80, cfg.Music.Volume)
	assert.Equal(t, "repeat", cfg.Music.Repeat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[desktop]
width = 2560
height = 1440
initial_z_index = 50

[windows]
standard = "800x500"
restore = "640x480"

[links]
github = "https://github.com/someone"

[portfolio]
path = "/srv/portfolio.json"
watch = false

[terminal]
user = "visitor"
wrap_width = 60

[browser]
command = "firefox"

[music]
volume = 40
repeat = "shuffle"

[clipboard]
command = "wl-copy -n"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2560, cfg.Desktop.Width)
	assert.Equal(t, 1440, cfg.Desktop.Height)
	assert.Equal(t, 50, cfg.Desktop.InitialZIndex)
	assert.Equal(t, "800x500", cfg.Windows.Standard)
	assert.Equal(t, "1000x700", cfg.Windows.Large)
	assert.Equal(t, "https://github.com/someone", cfg.Links.GitHub)
	assert.Equal(t, "/srv/portfolio.json", cfg.PortfolioPath())
	assert.False(t, cfg.Portfolio.Watch)
	assert.Equal(t, "visitor", cfg.Terminal.User)
	assert.Equal(t, DefaultHost, cfg.Terminal.Host)
	assert.Equal(t, 60, cfg.Terminal.WrapWidth)
	assert.Equal(t, "firefox", cfg.Browser.Command)
	assert.Equal(t, 40, cfg.Music.Volume)
	assert.Equal(t, "shuffle", cfg.Music.Repeat)
	assert.Equal(t, "wl-copy -n", cfg.Clipboard.Command)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`this is not valid toml [`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad window size", "[windows]\nlarge = \"big\"\n"},
		{"zero viewport", "[desktop]\nwidth = 0\n"},
		{"volume out of range", "[music]\nvolume = 150\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Desktop.Width = 1280
	cfg.Links.GitHub = "https://github.com/me"

	require.NoError(t, cfg.Save(path))

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, loaded.Desktop.Width)
	assert.Equal(t, "https://github.com/me", loaded.Links.GitHub)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    model.Size
		wantErr bool
	}{
		{input: "900x600", want: model.Size{Width: 900, Height: 600}},
		{input: " 1000X700 ", want: model.Size{Width: 1000, Height: 700}},
		{input: "900", wantErr: true},
		{input: "0x600", wantErr: true},
		{input: "axb", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_WindowOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.WindowOptions("https://github.com/from-portfolio")

	assert.Equal(t, wm.DefaultInitialZIndex, opts.InitialZIndex)
	assert.Equal(t, wm.DefaultStandardSize, opts.StandardSize)
	assert.Equal(t, wm.DefaultLargeSize, opts.LargeSize)
	assert.Equal(t, wm.DefaultRestoreSize, opts.RestoreSize)
	assert.Equal(t, "https://github.com/from-portfolio", opts.GitHubURL)

	cfg.Links.GitHub = "https://github.com/override"
	cfg.Windows.Restore = "300x200"
	opts = cfg.WindowOptions("https://github.com/from-portfolio")
	assert.Equal(t, "https://github.com/override", opts.GitHubURL)
	assert.Equal(t, model.Size{Width: 300, Height: 200}, opts.RestoreSize)

	cfg.Links.GitHub = ""
	opts = cfg.WindowOptions("")
	assert.Equal(t, wm.DefaultGitHubURL, opts.GitHubURL)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/deskfolio/config.toml", ConfigPath())
}

func TestDataPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, "/custom/data/deskfolio", DataPath())
	assert.Equal(t, "/custom/data/deskfolio/portfolio.yaml", DefaultConfig().PortfolioPath())
	assert.Equal(t, "/custom/data/deskfolio/session.json", SessionPath())
}

func TestPortfolioPath_ExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	cfg := DefaultConfig()
	cfg.Portfolio.Path = "~/site/portfolio.yaml"
	assert.Equal(t, "/home/tester/site/portfolio.yaml", cfg.PortfolioPath())
}

func TestEnsureDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	require.NoError(t, EnsureDataDir())

	info, err := os.Stat(filepath.Join(dir, "deskfolio"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
