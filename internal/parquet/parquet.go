// Package parquet exports project listings to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/khaledelg/portfolio/schema"
	"github.com/parquet-go/parquet-go"
)

// ProjectRecord is one row of a project export.
type ProjectRecord struct {
	// Rank is the 1-based position in the listing (most recently updated first)
	Rank int32 `parquet:"rank,snappy"`

	// Owner is the GitHub user the listing was fetched for
	Owner string `parquet:"owner,snappy"`

	// Name is the repository name
	Name string `parquet:"name,snappy"`

	// Description is the repository description (may be empty)
	Description string `parquet:"description,snappy"`

	// URL links to the repository page
	URL string `parquet:"url,snappy"`

	// Homepage is the project website (nullable)
	Homepage *string `parquet:"homepage,optional,snappy"`

	// Topics is the comma-separated topic list
	Topics string `parquet:"topics,snappy"`

	// Language is the primary language (nullable)
	Language *string `parquet:"language,optional,snappy"`

	// Stars is the stargazer count
	Stars int32 `parquet:"stars,snappy"`

	// Label is the recency label (Active, Recent, Dormant, Unknown)
	Label string `parquet:"label,dict,snappy"`

	// UpdatedAt is the last update time of the repository
	UpdatedAt time.Time `parquet:"updated_at,snappy"`

	// ExportedAt is when this export was produced
	ExportedAt time.Time `parquet:"exported_at,snappy"`
}

// ToProjectRecords converts enriched projects into export rows.
func ToProjectRecords(owner string, projects []schema.EnrichedProject, exportedAt time.Time) []ProjectRecord {
	records := make([]ProjectRecord, len(projects))
	for i, p := range projects {
		records[i] = ProjectRecord{
			Rank:        int32(p.Rank),
			Owner:       owner,
			Name:        p.Name,
			Description: p.Description,
			URL:         p.URL,
			Homepage:    optional(p.Homepage),
			Topics:      strings.Join(p.Topics, ","),
			Language:    optional(p.Language),
			Stars:       int32(p.Stars),
			Label:       string(p.Label),
			UpdatedAt:   p.UpdatedAt,
			ExportedAt:  exportedAt,
		}
	}
	return records
}

// WriteProjectsParquet writes a slice of ProjectRecord structs to a Parquet file.
func WriteProjectsParquet(data []ProjectRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the ProjectRecord struct tags
	writer := parquet.NewGenericWriter[ProjectRecord](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
