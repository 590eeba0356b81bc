package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/khaledelg/portfolio/internal/content"
	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testConfig(t *testing.T) *contract.Config {
	return &contract.Config{
		AppName:        "Portfolio",
		Host:           "127.0.0.1",
		Port:           8000,
		GitHubUsername: "octocat",
		HomeProjects:   2,
		ResumePath:     filepath.Join(t.TempDir(), "resume.pdf"),
		DefaultLocale:  schema.EnglishLocale,
	}
}

func testSite(t *testing.T) *content.Site {
	site, err := content.Load(t.TempDir(), schema.EnglishLocale)
	require.NoError(t, err)
	site.Experiences = []schema.Experience{{Company: "Acme", Role: "SRE", Start: "2020"}}
	site.Certifications = []schema.Certification{{Name: "CKA", Issuer: "CNCF"}}
	return site
}

func testProfile() schema.ProfileData {
	return schema.ProfileData{
		Username: "octocat",
		Projects: []schema.Project{
			{Name: "portfolio", URL: "https://github.com/octocat/portfolio", Topics: []string{"go", "web"}, Stars: 1200, UpdatedAt: testNow.Add(-48 * time.Hour)},
			{Name: "infra", URL: "https://github.com/octocat/infra", Topics: []string{"terraform"}, UpdatedAt: testNow.AddDate(0, -3, 0)},
			{Name: "dotfiles", URL: "https://github.com/octocat/dotfiles", Topics: []string{}, UpdatedAt: testNow.AddDate(-2, 0, 0)},
		},
	}
}

func newTestServer(t *testing.T, source contract.ProfileSource, cfg *contract.Config) (*Server, *memory.Handler) {
	t.Helper()
	handler := memory.New()
	logger := &log.Logger{Handler: handler, Level: log.DebugLevel}
	srv, err := NewServer(cfg, source, testSite(t), WithLogger(logger), WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	return srv, handler
}

func do(t *testing.T, h http.Handler, method, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex_RendersProjects(t *testing.T) {
	source := &contract.MockProfileSource{}
	source.On("GetProfileData", mock.Anything).Return(testProfile(), nil)
	srv, _ := newTestServer(t, source, testConfig(t))

	rec := do(t, srv.Handler(), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "portfolio")
	assert.Contains(t, body, "infra")
	assert.NotContains(t, body, "dotfiles", "home page is limited to home-projects entries")
	assert.Contains(t, body, "1,200")
	assert.Contains(t, body, "2 days ago")
	assert.Contains(t, body, `data-label="active"`)
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "CKA")
	assert.Contains(t, body, "Kubernetes")
	assert.NotContains(t, body, `id="projects-unavailable"`)
	source.AssertExpectations(t)
}

func TestIndex_DegradesWhenUpstreamUnavailable(t *testing.T) {
	source := &contract.MockProfileSource{}
	source.On("GetProfileData", mock.Anything).
		Return(schema.ProfileData{}, fmt.Errorf("%w: boom", contract.ErrUpstreamUnavailable))
	srv, logs := newTestServer(t, source, testConfig(t))

	rec := do(t, srv.Handler(), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `id="projects-unavailable"`)
	assert.Contains(t, body, "temporarily unavailable")
	assert.Contains(t, body, "Acme", "static sections still render")

	var warned bool
	for _, e := range logs.Entries {
		if e.Level == log.WarnLevel && e.Message == "rendering home page without projects" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestIndex_HiddenProjectsSkipFetch(t *testing.T) {
	source := &contract.MockProfileSource{}
	cfg := testConfig(t)
	cfg.HomeProjects = 0
	srv, _ := newTestServer(t, source, cfg)

	rec := do(t, srv.Handler(), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `id="projects"`)
	source.AssertNotCalled(t, "GetProfileData", mock.Anything)
}

func TestIndex_Locale(t *testing.T) {
	source := &contract.MockProfileSource{}
	source.On("GetProfileData", mock.Anything).Return(testProfile(), nil)
	srv, _ := newTestServer(t, source, testConfig(t))

	rec := do(t, srv.Handler(), http.MethodGet, "/?lang=fr")
	assert.Contains(t, rec.Body.String(), "Compétences")
	assert.Contains(t, rec.Body.String(), `lang="fr"`)

	rec = do(t, srv.Handler(), http.MethodGet, "/", "Accept-Language", "fr-FR,fr;q=0.9,en;q=0.8")
	assert.Contains(t, rec.Body.String(), "Compétences")

	rec = do(t, srv.Handler(), http.MethodGet, "/?lang=de")
	assert.Contains(t, rec.Body.String(), "Skills")
}

func TestAPIProjects(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantNames []string
	}{
		{"default", "/api/projects", http.StatusOK, []string{"portfolio", "infra", "dotfiles"}},
		{"topic filter", "/api/projects?topics=Terraform", http.StatusOK, []string{"infra"}},
		{"several topics", "/api/projects?topics=web,terraform", http.StatusOK, []string{"portfolio", "infra"}},
		{"limit", "/api/projects?limit=1", http.StatusOK, []string{"portfolio"}},
		{"limit above cap", "/api/projects?limit=5000", http.StatusOK, []string{"portfolio", "infra", "dotfiles"}},
		{"no match", "/api/projects?topics=rust", http.StatusOK, []string{}},
		{"bad limit", "/api/projects?limit=abc", http.StatusBadRequest, nil},
		{"zero limit", "/api/projects?limit=0", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &contract.MockProfileSource{}
			source.On("GetProfileData", mock.Anything).Return(testProfile(), nil)
			srv, _ := newTestServer(t, source, testConfig(t))

			rec := do(t, srv.Handler(), http.MethodGet, tt.target)
			require.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantNames == nil {
				return
			}

			var projects []schema.Project
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
			names := make([]string, 0, len(projects))
			for _, p := range projects {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestAPIProjects_Unavailable(t *testing.T) {
	source := &contract.MockProfileSource{}
	source.On("GetProfileData", mock.Anything).
		Return(schema.ProfileData{}, fmt.Errorf("%w: boom", contract.ErrUpstreamUnavailable))
	srv, _ := newTestServer(t, source, testConfig(t))

	rec := do(t, srv.Handler(), http.MethodGet, "/api/projects")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}

func TestAPIStatus(t *testing.T) {
	status := schema.CacheStatus{Identity: "octocat", HasEntry: true, Fresh: true, TTLSeconds: 900}
	source := &contract.MockProfileSource{}
	source.On("Status").Return(status)
	srv, _ := newTestServer(t, source, testConfig(t))

	rec := do(t, srv.Handler(), http.MethodGet, "/api/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var got schema.CacheStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "octocat", got.Identity)
	assert.True(t, got.Fresh)
	assert.Equal(t, 900, got.TTLSeconds)
	source.AssertNotCalled(t, "GetProfileData", mock.Anything)
}

func TestResume(t *testing.T) {
	cfg := testConfig(t)
	srv, _ := newTestServer(t, &contract.MockProfileSource{}, cfg)

	rec := do(t, srv.Handler(), http.MethodGet, "/resume")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, os.WriteFile(cfg.ResumePath, []byte("%PDF-1.4 fake"), 0o644))
	rec = do(t, srv.Handler(), http.MethodGet, "/resume")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="resume.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 fake", rec.Body.String())
}

func TestStaticAndHealth(t *testing.T) {
	srv, _ := newTestServer(t, &contract.MockProfileSource{}, testConfig(t))
	h := srv.Handler()

	rec := do(t, h, http.MethodGet, "/static/js/site.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IntersectionObserver")

	rec = do(t, h, http.MethodGet, "/static/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/static/missing.js")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORS(t *testing.T) {
	srv, _ := newTestServer(t, &contract.MockProfileSource{}, testConfig(t))
	h := srv.Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "Origin", "https://elsewhere.example")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, h, http.MethodOptions, "/api/projects",
		"Origin", "https://elsewhere.example",
		"Access-Control-Request-Method", "GET",
		"Access-Control-Request-Headers", "X-Requested-With")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
	assert.Equal(t, "X-Requested-With", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestRequestLogging(t *testing.T) {
	srv, logs := newTestServer(t, &contract.MockProfileSource{}, testConfig(t))
	do(t, srv.Handler(), http.MethodGet, "/healthz")

	require.NotEmpty(t, logs.Entries)
	last := logs.Entries[len(logs.Entries)-1]
	assert.Equal(t, "request", last.Message)
	assert.Equal(t, "/healthz", last.Fields["path"])
	assert.Equal(t, http.StatusOK, last.Fields["status"])
}

func TestFirstLanguage(t *testing.T) {
	assert.Equal(t, "", firstLanguage(""))
	assert.Equal(t, "fr-FR", firstLanguage("fr-FR,fr;q=0.9"))
	assert.Equal(t, "en", firstLanguage(" en;q=0.8 "))
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, &contract.MockProfileSource{}, testConfig(t))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
