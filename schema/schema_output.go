package schema

import "time"

// Recency thresholds used by GetRecencyLabel.
const (
	ActiveWindow = 30 * 24 * time.Hour
	RecentWindow = 180 * 24 * time.Hour
)

// EnrichedProject adds presentation data to a Project.
type EnrichedProject struct {
	Rank  int          `json:"rank"`
	Label RecencyLabel `json:"label"`
	Project
}

// GetRecencyLabel classifies a project update time relative to now.
func GetRecencyLabel(updated, now time.Time) RecencyLabel {
	if updated.IsZero() {
		return UnknownLabel
	}
	age := now.Sub(updated)
	switch {
	case age < ActiveWindow:
		return ActiveLabel
	case age < RecentWindow:
		return RecentLabel
	default:
		return DormantLabel
	}
}

// EnrichProjects adds rank and label to a list of projects.
func EnrichProjects(projects []Project, now time.Time) []EnrichedProject {
	output := make([]EnrichedProject, len(projects))
	for i, p := range projects {
		output[i] = EnrichedProject{
			Rank:    i + 1,
			Label:   GetRecencyLabel(p.UpdatedAt, now),
			Project: p,
		}
	}
	return output
}
