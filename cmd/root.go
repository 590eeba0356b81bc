package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/khaledelg/portfolio/core"
	"github.com/khaledelg/portfolio/internal/content"
	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/internal/github"
	logger "github.com/khaledelg/portfolio/internal/log"
	"github.com/khaledelg/portfolio/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations. Commands that block replace it
// with a signal-aware context.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "portfolio",
	Short:              "Personal portfolio site with live GitHub projects.",
	Long:               `Portfolio serves a personal site whose project section is fed by a cached view of a GitHub account.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".portfolio") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("PORTFOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// The conventional GitHub variable is honored too
	_ = viper.BindEnv("github-token", "PORTFOLIO_GITHUB_TOKEN", "GITHUB_TOKEN")

	viper.SetDefault("app-name", contract.DefaultAppName)
	viper.SetDefault("environment", contract.DefaultEnvironment)
	viper.SetDefault("github-username", contract.DefaultGitHubUsername)
	viper.SetDefault("github-api-url", contract.DefaultGitHubAPIURL)
	viper.SetDefault("cache-ttl", contract.DefaultCacheTTL)
	viper.SetDefault("default-locale", string(schema.EnglishLocale))
	viper.SetDefault("data-dir", contract.DefaultDataDir)
	viper.SetDefault("log-level", contract.DefaultLogLevel)
	viper.SetDefault("host", contract.DefaultHost)
	viper.SetDefault("port", contract.DefaultPort)
	viper.SetDefault("resume-path", contract.DefaultResumePath)
	viper.SetDefault("home-projects", contract.DefaultHomeProjects)
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config, runs validation and installs the logger.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 4. Logging goes to stderr so stdout stays clean for output and MCP.
	return logger.InitLogger(cfg.LogLevel)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// newFetcher builds the GitHub client and the cached fetcher from cfg.
func newFetcher() *core.CachedFetcher {
	client := github.NewClient(cfg.GitHubAPIURL,
		github.WithToken(cfg.GitHubToken),
		github.WithReadmePreviews(cfg.ReadmePreview),
	)
	return core.NewCachedFetcher(client, cfg.GitHubUsername, cfg.CacheTTL)
}

// loadSite reads the static site content from the data directory.
func loadSite() (*content.Site, error) {
	site, err := content.Load(cfg.DataDir, cfg.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}
	return site, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
