package portfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/deskfolio/internal/model"
)

const sampleJSON = `{
  "personalInfo": {"name": "Jane Smith", "role": "Researcher"},
  "socialLinks": {"github": "https://github.com/jane"},
  "bio": {"short": "Hi", "full": "Hello there"},
  "researchInterests": ["Vision", "Robotics"],
  "techStack": {
    "languages": [{"name": "Python", "level": "Expert"}, {"name": "Go", "level": "Good"}],
    "mlFrameworks": ["PyTorch"],
    "webFrameworks": ["React"],
    "tools": ["Docker"]
  },
  "projects": {
    "research": [{"title": "Grasp Net", "description": "Grasping", "tech": ["PyTorch"], "year": "2023",
                  "links": {"github": "https://github.com/jane/grasp"}}]
  },
  "systemInfo": [{"label": "OS", "value": "Arch Linux"}],
  "music": [{"name": "Song", "artist": "Band", "youtubeId": "abc123"}]
}`

const sampleYAML = `
personal_info:
  name: Jane Smith
social_links:
  github: https://github.com/jane
projects:
  personal:
    - title: Dot Files
      tech: [Shell]
      status: Ongoing
music:
  - name: Song
    src: /music/song.mp3
`

func TestParse_JSON(t *testing.T) {
	p, err := Parse([]byte(sampleJSON), ".json")
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", p.PersonalInfo.Name)
	assert.Equal(t, "https://github.com/jane", p.SocialLinks.GitHub)
	assert.Equal(t, []string{"Vision", "Robotics"}, p.ResearchInterests)
	require.Len(t, p.Projects.Research, 1)
	assert.Equal(t, "https://github.com/jane/grasp", p.Projects.Research[0].Links["github"])
	require.Len(t, p.Music, 1)
	assert.Equal(t, "abc123", p.Music[0].YouTubeID)
}

func TestParse_YAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".YML"} {
		p, err := Parse([]byte(sampleYAML), ext)
		require.NoError(t, err, ext)

		assert.Equal(t, "Jane Smith", p.PersonalInfo.Name)
		require.Len(t, p.Projects.Personal, 1)
		assert.Equal(t, "Ongoing", p.Projects.Personal[0].Status)
		assert.Equal(t, "/music/song.mp3", p.Music[0].Src)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("{}"), ".toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Parse([]byte("{not json"), ".json")
	assert.Error(t, err)

	_, err = Parse([]byte("personal_info: [unclosed"), ".yaml")
	assert.Error(t, err)
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.yaml")
	p := Default()
	p.PersonalInfo.Name = "Saved Name"

	require.NoError(t, Save(path, p))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Saved Name", loaded.PersonalInfo.Name)
	assert.Equal(t, p.Projects.Personal[0].Title, loaded.Projects.Personal[0].Title)
}

func TestDeveloperFrom(t *testing.T) {
	p, err := Parse([]byte(sampleJSON), ".json")
	require.NoError(t, err)

	dev := DeveloperFrom(p)
	assert.Equal(t, "Hello there", dev.About)
	assert.Equal(t, []string{"Python", "Go"}, dev.Code)
	assert.Equal(t, []string{"PyTorch", "React", "Docker"}, dev.ToolsUsed)
	assert.Equal(t, []string{"Arch Linux"}, dev.OperatingSystems)
	assert.Equal(t, []string{"Vision", "Robotics"}, dev.Interests)
}

func TestDeveloperFrom_DefaultOS(t *testing.T) {
	dev := DeveloperFrom(&model.Portfolio{})
	assert.Equal(t, []string{DefaultOperatingSystem}, dev.OperatingSystems)
	assert.Empty(t, dev.Code)
}

func TestSource_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	src, err := NewSource(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", src.Current().PersonalInfo.Name)

	var seen []string
	src.OnChange(func(p *model.Portfolio) {
		seen = append(seen, p.PersonalInfo.Name)
	})

	require.NoError(t, os.WriteFile(path, []byte("personal_info:\n  name: John\n"), 0644))
	require.NoError(t, src.Reload())
	assert.Equal(t, "John", src.Current().PersonalInfo.Name)
	assert.Equal(t, []string{"John"}, seen)

	// A broken file keeps the last good portfolio.
	require.NoError(t, os.WriteFile(path, []byte("personal_info: [unclosed"), 0644))
	assert.Error(t, src.Reload())
	assert.Equal(t, "John", src.Current().PersonalInfo.Name)
	assert.Len(t, seen, 1)
}
