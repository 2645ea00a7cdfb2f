package portfolio

import "github.com/jmylchreest/deskfolio/internal/model"

// DefaultOperatingSystem is reported when the portfolio has no OS entry.
const DefaultOperatingSystem = "Mac OS 9.2.1 (Retro Edition)"

// Developer is the summary the terminal shows for whoami and about.
type Developer struct {
	About            string
	Code             []string
	Interests        []string
	OperatingSystems []string
	ToolsUsed        []string
	IDEs             []string
}

// DeveloperFrom derives the developer summary from a portfolio.
func DeveloperFrom(p *model.Portfolio) Developer {
	langs := make([]string, 0, len(p.TechStack.Languages))
	for _, l := range p.TechStack.Languages {
		langs = append(langs, l.Name)
	}

	var tools []string
	tools = append(tools, p.TechStack.MLFrameworks...)
	tools = append(tools, p.TechStack.WebFrameworks...)
	tools = append(tools, p.TechStack.Tools...)

	osName := DefaultOperatingSystem
	for _, info := range p.SystemInfo {
		if info.Label == "OS" && info.Value != "" {
			osName = info.Value
			break
		}
	}

	return Developer{
		About:            p.Bio.Full,
		Code:             langs,
		Interests:        p.ResearchInterests,
		OperatingSystems: []string{osName},
		ToolsUsed:        tools,
		IDEs:             []string{"Cursor", "VSCode", "Jupyter", "PyCharm"},
	}
}
