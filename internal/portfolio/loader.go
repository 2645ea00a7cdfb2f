package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/deskfolio/internal/model"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported portfolio format")

// Load reads a portfolio from a YAML (.yaml, .yml) or JSON (.json) file.
// JSON files use the camelCase field names of the web site's data file.
// A missing file yields the built-in sample portfolio.
func Load(path string) (*model.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes portfolio data. ext selects the format and includes the dot.
func Parse(data []byte, ext string) (*model.Portfolio, error) {
	var p model.Portfolio
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse portfolio yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse portfolio json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &p, nil
}

// Save writes the portfolio as YAML, creating parent directories.
func Save(path string, p *model.Portfolio) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Default returns a small sample portfolio used until a real one exists.
func Default() *model.Portfolio {
	return &model.Portfolio{
		PersonalInfo: model.PersonalInfo{
			Name:            "Alex Doe",
			Email:           "alex@example.com",
			Role:            "Software Engineer",
			CurrentPosition: "Building developer tools",
			Work:            "Independent",
			Location:        model.Location{Primary: "Remote"},
		},
		SocialLinks: model.SocialLinks{
			GitHub: "https://github.com/alexdoe",
		},
		Bio: model.Bio{
			Short: "Engineer who likes small sharp tools.",
			Full:  "Engineer who likes small sharp tools, terminal interfaces and systems that explain themselves.",
		},
		ResearchInterests: []string{"Developer tooling", "Distributed systems"},
		TechStack: model.TechStack{
			Languages: []model.Language{{Name: "Go", Level: "Advanced"}},
			Tools:     []string{"git", "tmux"},
		},
		Projects: model.ProjectGroups{
			Personal: []model.PortfolioProject{{
				Title:       "deskfolio",
				Description: "A desktop-style portfolio for the terminal.",
				Tech:        []string{"Go"},
				Status:      "Ongoing",
				Links:       map[string]string{"github": "https://github.com/alexdoe/deskfolio"},
			}},
		},
		SystemInfo: []model.SystemInfo{{Label: "OS", Value: "Linux"}},
		Footer: model.Footer{
			Tagline: "Made in a terminal.",
		},
	}
}
