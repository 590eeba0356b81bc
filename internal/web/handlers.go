package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	"github.com/khaledelg/portfolio/core"
	"github.com/khaledelg/portfolio/internal/content"
	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/schema"
)

// indexPage is the data handed to index.html.
type indexPage struct {
	AppName        string
	Username       string
	Tr             *content.Translator
	Skills         []schema.Group
	TechStack      []schema.Group
	Experiences    []schema.Experience
	Certifications []schema.Certification
	ShowProjects   bool
	Projects       []schema.EnrichedProject
	Unavailable    bool
	Year           int
}

// errorBody is the JSON shape of API errors.
type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := indexPage{
		AppName:        s.cfg.AppName,
		Username:       s.cfg.GitHubUsername,
		Tr:             s.translator(r),
		Skills:         s.site.Skills,
		TechStack:      s.site.TechStack,
		Experiences:    s.site.Experiences,
		Certifications: s.site.Certifications,
		ShowProjects:   s.cfg.HomeProjects > 0,
		Year:           s.now().Year(),
	}

	if page.ShowProjects {
		projects, err := core.SelectProjects(r.Context(), s.source, nil, s.cfg.HomeProjects)
		if err != nil {
			// The page still renders; only the live section degrades.
			s.logger.WithError(err).Warn("rendering home page without projects")
			page.Unavailable = true
		} else {
			page.Projects = schema.EnrichProjects(projects, s.now())
		}
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", page); err != nil {
		s.logger.WithError(err).Error("failed to render index")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	topics := contract.ParseTopics(query.Get("topics"))

	limit := contract.DefaultAPIProjects
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, contract.MaxAPIProjects)
	}

	projects, err := core.SelectProjects(r.Context(), s.source, topics, limit)
	if err != nil {
		if errors.Is(err, contract.ErrUpstreamUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "project data is temporarily unavailable"})
			return
		}
		s.logger.WithError(err).Error("failed to select projects")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.source.Status())
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(s.cfg.ResumePath)
	if errors.Is(err, fs.ErrNotExist) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("path", s.cfg.ResumePath).Error("failed to open resume")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	http.ServeContent(w, r, "resume.pdf", info.ModTime(), f)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// translator returns the request translator set by negotiateLocale.
func (s *Server) translator(r *http.Request) *content.Translator {
	if tr := translatorFrom(r.Context()); tr != nil {
		return tr
	}
	return s.site.Locales.Translator("")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
