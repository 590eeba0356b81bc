package core

import (
	"context"
	"strings"

	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/schema"
)

// FilterByTopics keeps projects sharing at least one topic with the filter.
// Matching is case-insensitive. An empty filter keeps everything.
func FilterByTopics(projects []schema.Project, topics []string) []schema.Project {
	if len(topics) == 0 {
		return projects
	}
	wanted := make(map[string]struct{}, len(topics))
	for _, topic := range topics {
		wanted[strings.ToLower(strings.TrimSpace(topic))] = struct{}{}
	}

	filtered := make([]schema.Project, 0, len(projects))
	for _, p := range projects {
		for _, topic := range p.Topics {
			if _, ok := wanted[strings.ToLower(topic)]; ok {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// SelectProjects fetches profile data from source, filters by topics and truncates to limit.
// A limit of zero or less means no limit.
func SelectProjects(ctx context.Context, source contract.ProfileSource, topics []string, limit int) ([]schema.Project, error) {
	data, err := source.GetProfileData(ctx)
	if err != nil {
		return nil, err
	}
	projects := FilterByTopics(data.Projects, topics)
	if limit > 0 && len(projects) > limit {
		projects = projects[:limit]
	}
	return projects, nil
}
