package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/internal/parquet"
	"github.com/khaledelg/portfolio/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteProjectResults outputs a project listing, dispatching based on the output format configured.
func WriteProjectResults(owner string, projects []schema.EnrichedProject, cfg *contract.Config, now time.Time) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, cfg.Output, len(projects), func(w io.Writer) error {
			return writeJSON(w, projects)
		}); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, cfg.Output, len(projects), func(w io.Writer) error {
			return writeProjectCSV(w, projects)
		}); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		records := parquet.ToProjectRecords(owner, projects, now)
		if err := parquet.WriteProjectsParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		reportSaved(cfg.OutputFile, cfg.Output, len(records))
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, schema.TextOut, len(projects), func(w io.Writer) error {
			return writeProjectTable(w, owner, projects, cfg, now)
		})
	}
	return nil
}

// writeProjectTable generates and writes the human-readable table.
func writeProjectTable(w io.Writer, owner string, projects []schema.EnrichedProject, cfg *contract.Config, now time.Time) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Name", "Label", "Stars", "Language", "Updated", "Description"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	descWidth := GetMaxDescriptionWidth(cfg)
	var data [][]string
	totalStars := 0
	for _, p := range projects {
		label := string(p.Label)
		if cfg.UseColors {
			label = contract.GetColorLabel(p.Label)
		}
		updated := "-"
		if !p.UpdatedAt.IsZero() {
			updated = humanize.RelTime(p.UpdatedAt, now, "ago", "from now")
		}
		data = append(data, []string{
			strconv.Itoa(p.Rank),
			p.Name,
			label,
			humanize.Comma(int64(p.Stars)),
			p.Language,
			updated,
			contract.TruncateText(p.Description, descWidth),
		})
		totalStars += p.Stars
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d projects for %s (total stars: %s)\n", len(projects), owner, humanize.Comma(int64(totalStars)))
	return err
}

// writeProjectCSV writes one row per project.
func writeProjectCSV(w io.Writer, projects []schema.EnrichedProject) error {
	header := []string{"rank", "name", "label", "stars", "language", "topics", "updated_at", "url", "homepage", "description"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range projects {
			updated := ""
			if !p.UpdatedAt.IsZero() {
				updated = p.UpdatedAt.Format(contract.DateTimeFormat)
			}
			row := []string{
				strconv.Itoa(p.Rank),
				p.Name,
				string(p.Label),
				strconv.Itoa(p.Stars),
				p.Language,
				strings.Join(p.Topics, ";"),
				updated,
				p.URL,
				p.Homepage,
				p.Description,
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
