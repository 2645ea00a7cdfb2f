package vfs

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/portfolio"
)

// Home is the directory "~" refers to and the shell starts in.
const Home = "/home"

var (
	ErrNotFound = errors.New("no such file or directory")
	ErrNotDir   = errors.New("not a directory")
	ErrIsDir    = errors.New("is a directory")
)

// Entry is one name in a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

type node struct {
	content  string
	children map[string]*node
}

func (n *node) isDir() bool {
	return n.children != nil
}

func dir() *node {
	return &node{children: make(map[string]*node)}
}

// FS is an immutable in-memory tree.
type FS struct {
	root *node
}

// New builds the tree for a portfolio:
//
//	/home/about
//	/home/interests
//	/home/reference
//	/home/projects/<project-id>
func New(p *model.Portfolio, wrapWidth int) *FS {
	dev := portfolio.DeveloperFrom(p)

	projects := dir()
	for _, proj := range model.ProjectsFrom(p) {
		if proj.ID == "" {
			continue
		}
		projects.children[proj.ID] = &node{content: projectFile(proj, wrapWidth)}
	}

	home := dir()
	home.children["about"] = &node{content: aboutFile(p, dev, wrapWidth)}
	home.children["interests"] = &node{content: strings.Join(dev.Interests, "\n")}
	home.children["reference"] = &node{content: referenceFile(p, wrapWidth)}
	home.children["projects"] = projects

	root := dir()
	root.children["home"] = home
	return &FS{root: root}
}

// Resolve turns a path typed at cwd into a clean absolute path. It accepts
// absolute and relative paths, ".", ".." and a leading "~". The result is
// not checked for existence.
func (fs *FS) Resolve(cwd, p string) string {
	switch {
	case p == "" || p == "~":
		return Home
	case strings.HasPrefix(p, "~/"):
		return path.Clean(Home + p[1:])
	case strings.HasPrefix(p, "/"):
		return path.Clean(p)
	}
	if cwd == "" {
		cwd = Home
	}
	return path.Clean(path.Join(cwd, p))
}

// IsDir reports whether p names a directory.
func (fs *FS) IsDir(p string) bool {
	n, err := fs.lookup(p)
	return err == nil && n.isDir()
}

// List returns the entries of the directory at p sorted by name.
func (fs *FS) List(p string) ([]Entry, error) {
	n, err := fs.lookup(p)
	if err != nil {
		return nil, err
	}
	if !n.isDir() {
		return nil, fmt.Errorf("%s: %w", p, ErrNotDir)
	}

	entries := make([]Entry, 0, len(n.children))
	for name, child := range n.children {
		entries = append(entries, Entry{Name: name, IsDir: child.isDir()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Read returns the contents of the file at p.
func (fs *FS) Read(p string) (string, error) {
	n, err := fs.lookup(p)
	if err != nil {
		return "", err
	}
	if n.isDir() {
		return "", fmt.Errorf("%s: %w", p, ErrIsDir)
	}
	return n.content, nil
}

func (fs *FS) lookup(p string) (*node, error) {
	p = path.Clean("/" + p)
	n := fs.root
	if p == "/" {
		return n, nil
	}
	for _, part := range strings.Split(strings.TrimPrefix(p, "/"), "/") {
		if !n.isDir() {
			return nil, fmt.Errorf("%s: %w", p, ErrNotDir)
		}
		child, ok := n.children[part]
		if !ok {
			return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
		}
		n = child
	}
	return n, nil
}

func aboutFile(p *model.Portfolio, dev portfolio.Developer, width int) string {
	var b strings.Builder
	b.WriteString(WrapText(dev.About, width))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Role: %s\n", p.PersonalInfo.Role)
	fmt.Fprintf(&b, "Current Position: %s\n", WrapText(p.PersonalInfo.CurrentPosition, width))
	fmt.Fprintf(&b, "Work: %s\n\n", p.PersonalInfo.Work)
	fmt.Fprintf(&b, "Programming Languages: %s", strings.Join(dev.Code, ", "))
	return b.String()
}

func referenceFile(p *model.Portfolio, width int) string {
	var b strings.Builder
	b.WriteString("Portfolio Reference\n")
	b.WriteString("===================\n\n")
	b.WriteString(WrapText("This desktop renders portfolio content loaded from a YAML or JSON file. Edit the file and the terminal, projects and about views pick up the change.", width))
	if p.SocialLinks.GitHub != "" {
		fmt.Fprintf(&b, "\n\nSource: %s", p.SocialLinks.GitHub)
	}
	return b.String()
}

func projectFile(proj model.Project, width int) string {
	var b strings.Builder
	b.WriteString(proj.Name)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len(proj.Name)))
	b.WriteString("\n\n")
	if proj.ShortDescription != "" {
		b.WriteString(WrapText(proj.ShortDescription, width))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Type: %s\n", proj.Type)
	if len(proj.Technologies) > 0 {
		fmt.Fprintf(&b, "Technologies: %s\n", strings.Join(proj.Technologies, ", "))
	}
	if proj.Status != "" {
		fmt.Fprintf(&b, "Status: %s\n", proj.Status)
	}
	if proj.Year != "" {
		fmt.Fprintf(&b, "Year: %s\n", proj.Year)
	}
	for _, link := range []struct{ label, url string }{
		{"GitHub", proj.GitHubURL},
		{"Demo", proj.DemoURL},
		{"Paper", proj.PDFURL},
		{"Results", proj.WandbURL},
	} {
		if link.url != "" {
			fmt.Fprintf(&b, "%s: %s\n", link.label, link.url)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
