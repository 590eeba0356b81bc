// Package github is the read-only client for the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/schema"
)

const (
	// DefaultTimeout bounds a single upstream call.
	DefaultTimeout = 10 * time.Second

	// ReadmePreviewLength is the number of characters kept from a README.
	ReadmePreviewLength = 400

	apiVersion   = "2022-11-28"
	userAgent    = "portfolio-site"
	maxBodyBytes = 8 << 20
)

// ListOptions are the query parameters of the repository listing endpoint.
type ListOptions struct {
	PerPage int    `url:"per_page,omitempty"`
	Sort    string `url:"sort,omitempty"`
	Type    string `url:"type,omitempty"`
}

// Client fetches a user's public repositories.
type Client struct {
	baseURL        string
	token          string
	readmePreviews bool
	http           *http.Client
	validate       *validator.Validate
	logger         log.Interface
}

var _ contract.ProfileClient = &Client{} // Compile-time check

// Option customizes a Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithReadmePreviews enables one extra request per repository for README text.
func WithReadmePreviews(enabled bool) Option {
	return func(c *Client) {
		c.readmePreviews = enabled
	}
}

// WithHTTPClient replaces the pooled transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger overrides the logger.
func WithLogger(logger log.Interface) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = DefaultTimeout

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     hc,
		validate: validator.New(),
		logger:   log.Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// repoResponse is the subset of the repository object we consume.
type repoResponse struct {
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url" validate:"required,url"`
	Homepage        string    `json:"homepage" validate:"omitempty,url"`
	Topics          []string  `json:"topics"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count" validate:"min=0"`
	UpdatedAt       time.Time `json:"updated_at" validate:"required"`
}

// FetchProfile lists the public repositories of username, most recently updated first.
func (c *Client) FetchProfile(ctx context.Context, username string) (schema.ProfileData, error) {
	reposURL, err := c.reposURL(username)
	if err != nil {
		return schema.ProfileData{}, err
	}

	body, err := c.get(ctx, reposURL, "application/vnd.github+json")
	if err != nil {
		return schema.ProfileData{}, err
	}

	projects, err := c.parseRepos(body)
	if err != nil {
		return schema.ProfileData{}, err
	}

	if c.readmePreviews {
		for i := range projects {
			projects[i].ReadmePreview = c.fetchReadmePreview(ctx, username, projects[i].Name)
		}
	}

	return schema.ProfileData{Username: username, Projects: projects}, nil
}

// reposURL builds the listing URL with its query string.
func (c *Client) reposURL(username string) (string, error) {
	values, err := query.Values(ListOptions{PerPage: 100, Sort: "updated"})
	if err != nil {
		return "", fmt.Errorf("failed to encode query: %w", err)
	}
	return fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), values.Encode()), nil
}

// parseRepos is the schema step: it produces typed projects or ErrMalformedResponse.
// Individual entries that fail validation are skipped.
func (c *Client) parseRepos(body []byte) ([]schema.Project, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array of repositories: %w", contract.ErrMalformedResponse, err)
	}

	projects := make([]schema.Project, 0, len(raw))
	for i, item := range raw {
		var repo repoResponse
		if err := json.Unmarshal(item, &repo); err != nil {
			c.logger.WithError(err).WithField("index", i).Debug("skipping undecodable repository")
			continue
		}
		repo.Homepage = strings.TrimSpace(repo.Homepage)
		if err := c.validate.Struct(repo); err != nil {
			c.logger.WithError(err).WithField("repo", repo.Name).Debug("skipping invalid repository")
			continue
		}
		projects = append(projects, toProject(repo))
	}

	if len(raw) > 0 && len(projects) == 0 {
		return nil, fmt.Errorf("%w: none of %d repositories passed validation", contract.ErrMalformedResponse, len(raw))
	}
	return projects, nil
}

// toProject maps the wire format to the domain type.
func toProject(repo repoResponse) schema.Project {
	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}
	return schema.Project{
		Name:        repo.Name,
		Description: repo.Description,
		URL:         repo.HTMLURL,
		Homepage:    repo.Homepage,
		Topics:      topics,
		Language:    repo.Language,
		Stars:       repo.StargazersCount,
		UpdatedAt:   repo.UpdatedAt.UTC(),
	}
}

// fetchReadmePreview returns the first characters of the README, or "" on any failure.
func (c *Client) fetchReadmePreview(ctx context.Context, username, repo string) string {
	readmeURL := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, url.PathEscape(username), url.PathEscape(repo))
	body, err := c.get(ctx, readmeURL, "application/vnd.github.raw")
	if err != nil {
		c.logger.WithError(err).WithField("repo", repo).Debug("readme preview unavailable")
		return ""
	}
	runes := []rune(string(body))
	if len(runes) > ReadmePreviewLength {
		runes = runes[:ReadmePreviewLength]
	}
	return string(runes)
}

// get performs a single GET and classifies failures into the contract taxonomy.
func (c *Client) get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", contract.ErrNetworkFailure, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &contract.UpstreamError{
			StatusCode:  resp.StatusCode,
			Status:      resp.Status,
			RateLimited: isRateLimited(resp),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", contract.ErrNetworkFailure, err)
	}
	return body, nil
}

// isRateLimited reports whether a 403/429 response is GitHub's rate limiter.
func isRateLimited(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0"
}
