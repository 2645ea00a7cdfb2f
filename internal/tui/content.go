package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/portfolio"
	"github.com/jmylchreest/deskfolio/internal/vfs"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Underline(true)
)

// renderContent renders the body of an application window.
func renderContent(kind model.Kind, p *model.Portfolio, width int) string {
	if p == nil {
		return labelStyle.Render("No portfolio loaded.")
	}
	wrap := width - 2
	if wrap <= 0 {
		wrap = vfs.DefaultWrapWidth
	}

	switch kind {
	case model.KindProjects:
		return renderProjects(p, wrap)
	case model.KindResume:
		return renderResume(p, wrap)
	case model.KindBooks:
		return renderBooks(p)
	case model.KindContact:
		return renderContact(p)
	case model.KindGames:
		return renderGames(p, wrap)
	case model.KindSafari:
		return renderSafari(p)
	case model.KindBlog:
		return headerStyle.Render("Blog") + "\n\n" +
			vfs.WrapText(p.Bio.Short, wrap) + "\n\n" +
			labelStyle.Render("Posts are published at ") + linkStyle.Render(p.SocialLinks.Substack)
	}
	return ""
}

func renderProjects(p *model.Portfolio, wrap int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Projects") + "\n")

	for _, proj := range model.ProjectsFrom(p) {
		b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render(proj.Name))
		b.WriteString(" " + portfolio.TypeColor(proj.Type).Style().Render(proj.Type))
		if proj.Status != "" {
			b.WriteString(" " + portfolio.StatusColor(proj.Status).Style().Render(proj.Status))
		}
		if proj.Year != "" {
			b.WriteString(" " + labelStyle.Render(proj.Year))
		}
		b.WriteString("\n")
		if proj.ShortDescription != "" {
			b.WriteString(vfs.WrapText(proj.ShortDescription, wrap) + "\n")
		}

		tags := make([]string, 0, len(proj.Technologies))
		for _, tech := range proj.Technologies {
			tags = append(tags, portfolio.TagColor(tech).Style().Render(tech))
		}
		if len(tags) > 0 {
			b.WriteString(strings.Join(tags, " ") + "\n")
		}

		for _, l := range []struct{ label, url string }{
			{"GitHub", proj.GitHubURL},
			{"Demo", proj.DemoURL},
			{"Paper", proj.PDFURL},
			{"Results", proj.WandbURL},
		} {
			if l.url != "" {
				b.WriteString(labelStyle.Render(l.label+": ") + linkStyle.Render(l.url) + "\n")
			}
		}
	}
	return b.String()
}

func renderResume(p *model.Portfolio, wrap int) string {
	var b strings.Builder
	info := p.PersonalInfo
	b.WriteString(headerStyle.Render(info.Name) + "\n")
	if info.Role != "" {
		b.WriteString(info.Role + "\n")
	}
	if info.Location.Primary != "" {
		b.WriteString(labelStyle.Render(info.Location.Primary) + "\n")
	}

	if len(p.Experience) > 0 {
		b.WriteString("\n" + headerStyle.Render("Experience") + "\n")
		for _, e := range p.Experience {
			fmt.Fprintf(&b, "%s, %s %s\n", e.Title, e.Company, labelStyle.Render("("+e.Period+")"))
			for _, r := range e.Responsibilities {
				b.WriteString(vfs.WrapText("  - "+r, wrap) + "\n")
			}
		}
	}

	if len(p.Education) > 0 {
		b.WriteString("\n" + headerStyle.Render("Education") + "\n")
		for _, e := range p.Education {
			fmt.Fprintf(&b, "%s, %s %s\n", e.Degree, e.Institution, labelStyle.Render("("+e.Years+")"))
		}
	}

	if len(p.TechStack.Languages) > 0 {
		b.WriteString("\n" + headerStyle.Render("Languages") + "\n")
		for _, l := range p.TechStack.Languages {
			b.WriteString(portfolio.TagColor(l.Name).Style().Render(l.Name) + " " + labelStyle.Render(l.Level) + "\n")
		}
	}

	if len(p.SpokenLanguages) > 0 {
		b.WriteString("\n" + headerStyle.Render("Spoken") + "\n")
		for _, l := range p.SpokenLanguages {
			fmt.Fprintf(&b, "%s %s %s\n", l.Flag, l.Language, labelStyle.Render(l.Level))
		}
	}
	return b.String()
}

func renderBooks(p *model.Portfolio) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Bookshelf") + "\n\n")
	if len(p.CurrentlyReadingBooks) == 0 {
		b.WriteString(labelStyle.Render("Nothing on the shelf yet."))
		return b.String()
	}
	for _, book := range p.CurrentlyReadingBooks {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(book.Title))
		if book.Author != "" {
			b.WriteString(" by " + book.Author)
		}
		if book.Type != "" {
			b.WriteString(" " + labelStyle.Render("["+book.Type+"]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderContact(p *model.Portfolio) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Contact") + "\n\n")
	for _, row := range []struct{ label, value string }{
		{"Email", p.PersonalInfo.Email},
		{"GitHub", p.SocialLinks.GitHub},
		{"LinkedIn", p.SocialLinks.LinkedIn},
		{"Twitter", p.SocialLinks.Twitter},
		{"Substack", p.SocialLinks.Substack},
		{"Medium", p.SocialLinks.Medium},
	} {
		if row.value == "" {
			continue
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-9s", row.label)) + " " + linkStyle.Render(row.value) + "\n")
	}
	for _, c := range p.CollaborationInterests {
		b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render(c.Title) + "\n" + c.Description + "\n")
	}
	return b.String()
}

func renderGames(p *model.Portfolio, wrap int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Games") + "\n\n")
	if len(p.Games) == 0 {
		b.WriteString(labelStyle.Render("No games installed."))
		return b.String()
	}
	for _, g := range p.Games {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(g.Title) + "\n")
		if g.Description != "" {
			b.WriteString(vfs.WrapText(g.Description, wrap) + "\n")
		}
		if g.URL != "" {
			b.WriteString(linkStyle.Render(g.URL) + "\n")
		}
	}
	return b.String()
}

func renderSafari(p *model.Portfolio) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Reading List") + "\n\n")
	for _, r := range p.CurrentlyReading {
		b.WriteString(r.Title + "\n  " + linkStyle.Render(r.URL) + "\n")
	}
	return b.String()
}
