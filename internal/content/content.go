// Package content loads the static data rendered next to the live GitHub projects.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"github.com/khaledelg/portfolio/schema"
	"gopkg.in/yaml.v3"
)

// Data file base names inside the data directory. Each is tried with the
// extensions in dataExtensions, in order.
const (
	ExperienceFile     = "experience"
	CertificationsFile = "certifications"
	SkillsFile         = "skills"
	TechStackFile      = "tech_stack"
)

var dataExtensions = []string{".yaml", ".yml", ".json"}

// Site is everything the renderer needs besides the project list.
// It is loaded once at startup and read-only afterwards.
type Site struct {
	Experiences    []schema.Experience
	Certifications []schema.Certification
	Skills         []schema.Group
	TechStack      []schema.Group
	Locales        *Catalog
}

// Load reads the data directory. Missing files yield empty lists (or the
// built-in groups for skills and tech stack); unreadable or invalid files are errors.
func Load(dataDir string, defaultLocale schema.Locale) (*Site, error) {
	validate := validator.New()

	var experiences []schema.Experience
	if err := loadList(dataDir, ExperienceFile, &experiences); err != nil {
		return nil, err
	}
	for i := range experiences {
		if err := validate.Struct(experiences[i]); err != nil {
			return nil, fmt.Errorf("invalid experience #%d: %w", i+1, err)
		}
	}

	var certifications []schema.Certification
	if err := loadList(dataDir, CertificationsFile, &certifications); err != nil {
		return nil, err
	}
	for i := range certifications {
		if err := validate.Struct(certifications[i]); err != nil {
			return nil, fmt.Errorf("invalid certification #%d: %w", i+1, err)
		}
	}

	skills := DefaultSkills()
	if err := loadList(dataDir, SkillsFile, &skills); err != nil {
		return nil, err
	}
	techStack := DefaultTechStack()
	if err := loadList(dataDir, TechStackFile, &techStack); err != nil {
		return nil, err
	}

	catalog, err := NewCatalog(defaultLocale)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"dir":            dataDir,
		"experiences":    len(experiences),
		"certifications": len(certifications),
	}).Debug("site content loaded")

	return &Site{
		Experiences:    nonNil(experiences),
		Certifications: nonNil(certifications),
		Skills:         skills,
		TechStack:      techStack,
		Locales:        catalog,
	}, nil
}

// loadList decodes the first existing <dir>/<base><ext> into out.
// out is left untouched when no file exists.
func loadList(dir, base string, out any) error {
	for _, ext := range dataExtensions {
		path := filepath.Join(dir, base+ext)
		raw, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
