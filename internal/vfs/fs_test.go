package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/deskfolio/internal/model"
)

func testPortfolio() *model.Portfolio {
	return &model.Portfolio{
		PersonalInfo:      model.PersonalInfo{Role: "Engineer", Work: "Acme"},
		SocialLinks:       model.SocialLinks{GitHub: "https://github.com/jane"},
		Bio:               model.Bio{Full: "I build things."},
		ResearchInterests: []string{"Vision", "Robotics"},
		TechStack: model.TechStack{
			Languages: []model.Language{{Name: "Go"}, {Name: "Python"}},
		},
		Projects: model.ProjectGroups{
			Personal: []model.PortfolioProject{{
				Title:       "Grasp Net",
				Description: "Learning to grasp.",
				Tech:        []string{"PyTorch"},
				Year:        "2023",
				Links:       map[string]string{"github": "https://github.com/jane/grasp"},
			}},
		},
	}
}

func TestFS_Resolve(t *testing.T) {
	fs := New(testPortfolio(), 70)

	tests := []struct {
		cwd, path, want string
	}{
		{"/home", "", "/home"},
		{"/", "~", "/home"},
		{"/", "~/projects", "/home/projects"},
		{"/home", "projects", "/home/projects"},
		{"/home/projects", "..", "/home"},
		{"/home/projects", "../about", "/home/about"},
		{"/home", ".", "/home"},
		{"/home", "/home/../home/./about", "/home/about"},
		{"/", "../../..", "/"},
		{"", "about", "/home/about"},
	}

	for _, tt := range tests {
		t.Run(tt.cwd+"+"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, fs.Resolve(tt.cwd, tt.path))
		})
	}
}

func TestFS_List(t *testing.T) {
	fs := New(testPortfolio(), 70)

	entries, err := fs.List("/home")
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "about"},
		{Name: "interests"},
		{Name: "projects", IsDir: true},
		{Name: "reference"},
	}, entries)

	entries, err = fs.List("/home/projects")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "grasp-net"}}, entries)

	_, err = fs.List("/home/about")
	assert.ErrorIs(t, err, ErrNotDir)

	_, err = fs.List("/nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFS_Read(t *testing.T) {
	fs := New(testPortfolio(), 70)

	about, err := fs.Read("/home/about")
	require.NoError(t, err)
	assert.Contains(t, about, "I build things.")
	assert.Contains(t, about, "Role: Engineer")
	assert.Contains(t, about, "Programming Languages: Go, Python")

	interests, err := fs.Read("/home/interests")
	require.NoError(t, err)
	assert.Equal(t, "Vision\nRobotics", interests)

	project, err := fs.Read("/home/projects/grasp-net")
	require.NoError(t, err)
	assert.Contains(t, project, "Grasp Net\n=========")
	assert.Contains(t, project, "Technologies: PyTorch")
	assert.Contains(t, project, "GitHub: https://github.com/jane/grasp")

	_, err = fs.Read("/home")
	assert.ErrorIs(t, err, ErrIsDir)

	_, err = fs.Read("/home/about/x")
	assert.ErrorIs(t, err, ErrNotDir)

	_, err = fs.Read("/home/missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFS_IsDir(t *testing.T) {
	fs := New(testPortfolio(), 70)
	assert.True(t, fs.IsDir("/"))
	assert.True(t, fs.IsDir("/home/projects"))
	assert.False(t, fs.IsDir("/home/about"))
	assert.False(t, fs.IsDir("/missing"))
}
