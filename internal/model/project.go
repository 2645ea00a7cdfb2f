package model

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Project categories.
const (
	ProjectProfessional = "professional"
	ProjectAcademic     = "academic"
	ProjectPersonal     = "personal"
	ProjectResearch     = "research"
)

// Project is a portfolio project normalised for display and for the
// terminal's file system.
type Project struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Icon             string   `json:"icon" yaml:"icon"`
	ShortDescription string   `json:"short_description" yaml:"short_description"`
	GitHubURL        string   `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	WandbURL         string   `json:"wandb_url,omitempty" yaml:"wandb_url,omitempty"`
	PDFURL           string   `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`
	DemoURL          string   `json:"demo_url,omitempty" yaml:"demo_url,omitempty"`
	ReadmeURL        string   `json:"readme_url,omitempty" yaml:"readme_url,omitempty"`
	Technologies     []string `json:"technologies" yaml:"technologies"`
	Type             string   `json:"type" yaml:"type"`
	Status           string   `json:"status,omitempty" yaml:"status,omitempty"`
	Year             string   `json:"year,omitempty" yaml:"year,omitempty"`
}

var (
	slugRe = regexp.MustCompile(`[^a-z0-9]+`)
	yearRe = regexp.MustCompile(`\d{4}`)
)

// ProjectID derives a stable slug from a project title.
func ProjectID(title string) string {
	return strings.Trim(slugRe.ReplaceAllString(strings.ToLower(title), "-"), "-")
}

// NewProject normalises a portfolio project of the given category.
func NewProject(p PortfolioProject, category string) Project {
	icon := p.Icon
	if icon == "" {
		icon = "code"
	}
	tech := p.Tech
	if tech == nil {
		tech = []string{}
	}

	github := p.Links["github"]
	return Project{
		ID:               ProjectID(p.Title),
		Name:             p.Title,
		Icon:             icon,
		ShortDescription: p.Description,
		GitHubURL:        github,
		WandbURL:         wandbURL(p.Links),
		PDFURL:           p.Links["pdf"],
		DemoURL:          p.Links["demo"],
		ReadmeURL:        readmeURL(github),
		Technologies:     tech,
		Type:             category,
		Status:           p.Status,
		Year:             p.Year,
	}
}

// wandbURL accepts either a wandb link or a results link pointing at wandb.ai.
func wandbURL(links map[string]string) string {
	if u := links["wandb"]; u != "" {
		return u
	}
	if u := links["results"]; strings.Contains(u, "wandb.ai") {
		return u
	}
	return ""
}

func readmeURL(github string) string {
	if !strings.Contains(github, "github.com") {
		return ""
	}
	repo := strings.TrimSuffix(strings.TrimPrefix(github, "https://github.com/"), "/")
	return "https://raw.githubusercontent.com/" + repo + "/main/README.md"
}

// Ongoing reports whether the project is still in progress.
func (p Project) Ongoing() bool {
	return p.Status == "Ongoing" ||
		strings.Contains(p.Year, "Present") ||
		strings.Contains(p.Year, "Ongoing")
}

// SortYear returns the year used for ordering: 9999 for ongoing year ranges,
// the first four-digit year otherwise, and 0 when there is none.
func (p Project) SortYear() int {
	if p.Year == "" {
		return 0
	}
	if strings.Contains(p.Year, "Present") || strings.Contains(p.Year, "Ongoing") {
		return 9999
	}
	m := yearRe.FindString(p.Year)
	if m == "" {
		return 0
	}
	y, _ := strconv.Atoi(m)
	return y
}

// ProjectsFrom flattens and sorts every project in the portfolio.
func ProjectsFrom(p *Portfolio) []Project {
	if p == nil {
		return nil
	}
	groups := []struct {
		category string
		projects []PortfolioProject
	}{
		{ProjectProfessional, p.Projects.Professional},
		{ProjectAcademic, p.Projects.Academic},
		{ProjectPersonal, p.Projects.Personal},
		{ProjectResearch, p.Projects.Research},
	}

	var projects []Project
	for _, g := range groups {
		for _, pp := range g.projects {
			projects = append(projects, NewProject(pp, g.category))
		}
	}
	SortProjects(projects)
	return projects
}

// SortProjects orders ongoing projects first, then newest year first.
// Projects that compare equal keep their relative order.
func SortProjects(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if a.Ongoing() != b.Ongoing() {
			return a.Ongoing()
		}
		return a.SortYear() > b.SortYear()
	})
}
