// Package cmd defines the command-line interface for portfolio.
package cmd

import (
	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("app-name", contract.DefaultAppName, "Site name shown in the page title")
	rootCmd.PersistentFlags().String("environment", contract.DefaultEnvironment, "Deployment environment name")
	rootCmd.PersistentFlags().StringP("github-username", "u", contract.DefaultGitHubUsername, "GitHub account whose public repositories are shown")
	rootCmd.PersistentFlags().String("github-token", "", "GitHub token (prefer the GITHUB_TOKEN env var)")
	rootCmd.PersistentFlags().String("github-api-url", contract.DefaultGitHubAPIURL, "GitHub API base URL")
	rootCmd.PersistentFlags().Int("cache-ttl", contract.DefaultCacheTTL, "Seconds a fetched project list stays fresh (0 = always refetch)")
	rootCmd.PersistentFlags().Bool("readme-previews", false, "Fetch a README excerpt per repository (one extra request each)")
	rootCmd.PersistentFlags().String("default-locale", string(schema.EnglishLocale), "Default page language: en or fr")
	rootCmd.PersistentFlags().String("data-dir", contract.DefaultDataDir, "Directory holding experience, certifications, skills and tech stack files")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error or fatal")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("host", contract.DefaultHost, "Interface to listen on")
	serveCmd.Flags().IntP("port", "p", contract.DefaultPort, "Port to listen on")
	serveCmd.Flags().String("resume-path", contract.DefaultResumePath, "Path of the résumé PDF served at /resume")
	serveCmd.Flags().Int("home-projects", contract.DefaultHomeProjects, "Projects shown on the home page (0 hides the section)")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of projectsCmd to Viper
	projectsCmd.Flags().StringP("topics", "t", "", "Comma-separated topics to filter by")
	projectsCmd.Flags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	projectsCmd.Flags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	projectsCmd.Flags().String("output-file", "", "Optional path to write output to")
	projectsCmd.Flags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	projectsCmd.Flags().String("color", "yes", "Colorize labels: yes or no")
	if err := viper.BindPFlags(projectsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding projects flags", err)
	}
}
