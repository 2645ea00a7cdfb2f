package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/deskfolio/internal/adapter/output"
	"github.com/jmylchreest/deskfolio/internal/model"
)

var projectsOpts struct {
	format string
	typ    string
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List portfolio projects",
	Long: `List the portfolio's projects, ongoing first and then newest first.

Examples:
  deskfolio projects
  deskfolio projects --type research --format yaml`,
	Args: cobra.NoArgs,
	RunE: runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)

	projectsCmd.Flags().StringVarP(&projectsOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml)")
	projectsCmd.Flags().StringVar(&projectsOpts.typ, "type", "",
		"Only show projects of this type (professional, academic, personal, research)")
}

func runProjects(cmd *cobra.Command, args []string) error {
	projects := model.ProjectsFrom(source.Current())
	if projectsOpts.typ != "" {
		filtered := projects[:0]
		for _, p := range projects {
			if strings.EqualFold(p.Type, projectsOpts.typ) {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(projectsOpts.format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if projects == nil {
			projects = []model.Project{}
		}
		return enc.Encode(projects)
	case "yaml":
		return output.Encode(out, projects)
	case "plain", "":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "TYPE", "STATUS", "YEAR", "NAME")
		for _, p := range projects {
			t.Row(p.ID, p.Type, p.Status, p.Year, p.Name)
		}
		fmt.Fprintln(out, t.Render())
		return nil
	default:
		return fmt.Errorf("unknown output format %q", projectsOpts.format)
	}
}
