package contract

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/khaledelg/portfolio/schema"
)

// Default values for configuration.
const (
	DefaultAppName        = "Portfolio"
	DefaultEnvironment    = "development"
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 8000
	DefaultGitHubUsername = "KhaledELG"
	DefaultGitHubAPIURL   = "https://api.github.com"
	DefaultCacheTTL       = 900 // seconds
	DefaultDataDir        = "data"
	DefaultResumePath     = "data/resume.pdf"
	DefaultHomeProjects   = 6
	DefaultAPIProjects    = 20
	MaxAPIProjects        = 100
	DefaultResultLimit    = 20
	MaxResultLimit        = 100
	DefaultLogLevel       = "info"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// validLogLevels mirrors the levels understood by apex/log.
var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Config holds the runtime configuration for the server and CLI.
// It is the "final, validated" config and is read-only after startup.
type Config struct {
	AppName     string
	Environment string
	Host        string
	Port        int

	GitHubUsername string
	GitHubToken    string // Please use env var as this is plaintext
	GitHubAPIURL   string
	CacheTTL       time.Duration
	ReadmePreview  bool

	DefaultLocale schema.Locale
	DataDir       string
	ResumePath    string
	HomeProjects  int
	LogLevel      string

	Topics      []string
	ResultLimit int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	AppName        string `mapstructure:"app-name"`
	Environment    string `mapstructure:"environment"`
	GitHubUsername string `mapstructure:"github-username"`
	GitHubToken    string `mapstructure:"github-token"`
	GitHubAPIURL   string `mapstructure:"github-api-url"`
	CacheTTL       int    `mapstructure:"cache-ttl"`
	ReadmePreviews bool   `mapstructure:"readme-previews"`
	DefaultLocale  string `mapstructure:"default-locale"`
	DataDir        string `mapstructure:"data-dir"`
	LogLevel       string `mapstructure:"log-level"`

	// --- Fields from serveCmd.Flags() ---
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ResumePath   string `mapstructure:"resume-path"`
	HomeProjects int    `mapstructure:"home-projects"`

	// --- Fields from projectsCmd.Flags() ---
	Topics     string `mapstructure:"topics"`
	Limit      int    `mapstructure:"limit"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Topics != nil {
		clone.Topics = make([]string, len(c.Topics))
		copy(clone.Topics, c.Topics)
	}
	return &clone
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processUpstream(cfg, input); err != nil {
		return err
	}
	if err := processServer(cfg, input); err != nil {
		return err
	}
	if err := processOutput(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs transfers fields that need little or no validation.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.AppName = strings.TrimSpace(input.AppName)
	if cfg.AppName == "" {
		cfg.AppName = DefaultAppName
	}
	cfg.Environment = strings.TrimSpace(input.Environment)
	if cfg.Environment == "" {
		cfg.Environment = DefaultEnvironment
	}
	cfg.DataDir = input.DataDir
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level '%s'. must be debug, info, warn, error, fatal", input.LogLevel)
	}

	locale := strings.ToLower(strings.TrimSpace(input.DefaultLocale))
	if locale == "" {
		locale = string(schema.EnglishLocale)
	}
	cfg.DefaultLocale = schema.Locale(locale)
	if _, ok := schema.ValidLocales[cfg.DefaultLocale]; !ok {
		return fmt.Errorf("invalid default locale '%s'. must be en, fr", input.DefaultLocale)
	}
	return nil
}

// processUpstream validates the GitHub identity, token and cache TTL.
func processUpstream(cfg *Config, input *ConfigRawInput) error {
	cfg.GitHubUsername = strings.TrimSpace(input.GitHubUsername)
	if cfg.GitHubUsername == "" {
		return fmt.Errorf("github-username is required")
	}
	if strings.ContainsAny(cfg.GitHubUsername, "/?# ") {
		return fmt.Errorf("invalid github-username '%s'", cfg.GitHubUsername)
	}
	cfg.GitHubToken = strings.TrimSpace(input.GitHubToken)

	apiURL := strings.TrimRight(strings.TrimSpace(input.GitHubAPIURL), "/")
	if apiURL == "" {
		apiURL = DefaultGitHubAPIURL
	}
	parsed, err := url.Parse(apiURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid github-api-url '%s'", input.GitHubAPIURL)
	}
	cfg.GitHubAPIURL = apiURL

	if input.CacheTTL < 0 {
		return fmt.Errorf("cache-ttl must be 0 or greater (received %d)", input.CacheTTL)
	}
	cfg.CacheTTL = time.Duration(input.CacheTTL) * time.Second
	cfg.ReadmePreview = input.ReadmePreviews
	return nil
}

// processServer validates the HTTP listener and page settings.
func processServer(cfg *Config, input *ConfigRawInput) error {
	cfg.Host = input.Host
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if input.Port < 1 || input.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535 (received %d)", input.Port)
	}
	cfg.Port = input.Port

	cfg.ResumePath = input.ResumePath
	if cfg.ResumePath == "" {
		cfg.ResumePath = DefaultResumePath
	}

	if input.HomeProjects < 0 || input.HomeProjects > MaxAPIProjects {
		return fmt.Errorf("home-projects must be between 0 and %d (received %d)", MaxAPIProjects, input.HomeProjects)
	}
	cfg.HomeProjects = input.HomeProjects
	return nil
}

// processOutput validates CLI output settings used by the projects command.
func processOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.Topics = ParseTopics(input.Topics)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	color := input.Color
	if color == "" {
		color = "yes"
	}
	colors, err := ParseBoolString(color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors
	return nil
}
