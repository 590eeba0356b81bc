// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct {
	now func() time.Time
}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{now: time.Now}
}

// WriteProjects prints a project listing using the configured output format.
func (ow *OutWriter) WriteProjects(owner string, projects []schema.Project, cfg *contract.Config) error {
	return WriteProjectResults(owner, schema.EnrichProjects(projects, ow.now()), cfg, ow.now())
}
