package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/khaledelg/portfolio/internal/web"
	"github.com/spf13/cobra"
)

// serveCmd runs the website.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio website.",
	Long: `Start the HTTP server for the portfolio site.

The GitHub project list is fetched once at startup and then at most once per
cache-ttl seconds, on demand. When GitHub cannot be reached the last good list is
served; if none was ever fetched the page renders without the projects section.

Routes:
  /               Home page (?lang=en|fr)
  /api/projects   Projects as JSON (?topics=a,b&limit=n)
  /api/status     Cache state as JSON
  /resume         Résumé download
  /healthz        Liveness probe

Examples:
  # Serve on the default port
  portfolio serve

  # Serve another account on port 9000 with a 5 minute cache
  portfolio serve -u octocat -p 9000 --cache-ttl 300`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runServe(ctx); err != nil {
			log.WithError(err).Fatal("Cannot run server")
		}
	},
}

// runServe wires the fetcher, content and web server, then blocks until ctx ends.
func runServe(ctx context.Context) error {
	site, err := loadSite()
	if err != nil {
		return err
	}

	fetcher := newFetcher()
	log.WithFields(log.Fields{
		"app":         cfg.AppName,
		"environment": cfg.Environment,
		"github_user": cfg.GitHubUsername,
		"cache_ttl":   cfg.CacheTTL,
		"token":       cfg.GitHubToken != "",
	}).Info("starting portfolio")
	fetcher.Warm(ctx)

	srv, err := web.NewServer(cfg, fetcher, site)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
