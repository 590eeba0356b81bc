package cmd

import (
	"github.com/khaledelg/portfolio/core"
	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/internal/outwriter"
	"github.com/spf13/cobra"
)

// projectsCmd lists the projects the site would show.
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the GitHub projects shown on the site.",
	Long: `Fetch the public repositories of the configured GitHub account and print them,
most recently updated first.

Examples:
  # Show the 10 most recently updated projects
  portfolio projects --limit 10

  # Only Kubernetes and Terraform work
  portfolio projects --topics kubernetes,terraform

  # Export for analysis
  portfolio projects --output parquet --output-file projects.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		fetcher := newFetcher()
		projects, err := core.SelectProjects(rootCtx, fetcher, cfg.Topics, cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Cannot fetch projects", err)
		}
		if err := outwriter.NewOutWriter().WriteProjects(cfg.GitHubUsername, projects, cfg); err != nil {
			contract.LogFatal("Cannot write projects", err)
		}
	},
}
