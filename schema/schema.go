// Package schema holds the data types shared across the portfolio server.
package schema

import "time"

// Project is a public GitHub repository as shown on the portfolio.
type Project struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	URL           string    `json:"url"`
	Homepage      string    `json:"homepage,omitempty"`
	Topics        []string  `json:"topics"`
	Language      string    `json:"language,omitempty"`
	Stars         int       `json:"stars"`
	ReadmePreview string    `json:"readme_preview,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProfileData is the payload fetched from GitHub for one user.
// It is replaced wholesale on every refresh and never mutated in place.
type ProfileData struct {
	Username string    `json:"username"`
	Projects []Project `json:"projects"`
}

// Clone returns a deep copy so callers can filter or reorder freely.
func (p ProfileData) Clone() ProfileData {
	out := ProfileData{Username: p.Username}
	if p.Projects == nil {
		return out
	}
	out.Projects = make([]Project, len(p.Projects))
	for i, proj := range p.Projects {
		out.Projects[i] = proj.Clone()
	}
	return out
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	clone := p
	if p.Topics != nil {
		clone.Topics = make([]string, len(p.Topics))
		copy(clone.Topics, p.Topics)
	}
	return clone
}
