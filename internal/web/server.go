// Package web serves the portfolio pages, the JSON API and the static assets.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/khaledelg/portfolio/internal/content"
	"github.com/khaledelg/portfolio/internal/contract"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server renders the site from a profile source and the static content.
type Server struct {
	cfg    *contract.Config
	source contract.ProfileSource
	site   *content.Site
	tmpl   *template.Template
	logger log.Interface
	now    func() time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger overrides the logger used for request logs.
func WithLogger(logger log.Interface) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for recency labels.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer parses the embedded templates and wires the handlers.
func NewServer(cfg *contract.Config, source contract.ProfileSource, site *content.Site, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		source: source,
		site:   site,
		logger: log.Log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	tmpl, err := template.New("").Funcs(s.templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.tmpl = tmpl
	return s, nil
}

// templateFuncs are the helpers available to every template.
func (s *Server) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"ago": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return humanize.RelTime(t, s.now(), "ago", "from now")
		},
		"comma": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"join": strings.Join,
		"lower": strings.ToLower,
	}
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/projects", s.handleProjects)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /resume", s.handleResume)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	static, err := fs.Sub(staticFS, "static")
	if err == nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	}

	var h http.Handler = mux
	h = negotiateLocale(s.site.Locales, h)
	h = allowAllOrigins(h)
	h = logRequests(s.logger, h)
	return h
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.WithField("addr", ln.Addr().String()).Info("server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
