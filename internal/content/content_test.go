package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/khaledelg/portfolio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoad_EmptyDir(t *testing.T) {
	site, err := Load(t.TempDir(), schema.EnglishLocale)
	require.NoError(t, err)

	assert.NotNil(t, site.Experiences)
	assert.Empty(t, site.Experiences)
	assert.NotNil(t, site.Certifications)
	assert.Empty(t, site.Certifications)
	assert.Equal(t, DefaultSkills(), site.Skills)
	assert.Equal(t, DefaultTechStack(), site.TechStack)
	require.NotNil(t, site.Locales)
	assert.Equal(t, schema.EnglishLocale, site.Locales.DefaultLocale())
}

func TestLoad_MissingDirIsEmpty(t *testing.T) {
	site, err := Load(filepath.Join(t.TempDir(), "nope"), schema.EnglishLocale)
	require.NoError(t, err)
	assert.Empty(t, site.Experiences)
}

func TestLoad_YAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "experience.yaml", `
- company: Acme
  role: Platform Engineer
  start: "2021-03"
  end: ""
  description: Ran the Kubernetes fleet.
  technologies: [Kubernetes, Terraform]
`)
	writeFile(t, dir, "certifications.json", `[
  {"name": "CKA", "issuer": "CNCF", "date": "2023", "credential_url": "https://example.com/cka"}
]`)

	site, err := Load(dir, schema.FrenchLocale)
	require.NoError(t, err)

	require.Len(t, site.Experiences, 1)
	assert.Equal(t, "Acme", site.Experiences[0].Company)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, site.Experiences[0].Technologies)

	require.Len(t, site.Certifications, 1)
	assert.Equal(t, "CKA", site.Certifications[0].Name)
	assert.Equal(t, "https://example.com/cka", site.Certifications[0].CredentialURL)
	assert.Equal(t, schema.FrenchLocale, site.Locales.DefaultLocale())
}

func TestLoad_YAMLTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "certifications.yaml", "- {name: From YAML, issuer: X}\n")
	writeFile(t, dir, "certifications.json", `[{"name": "From JSON", "issuer": "Y"}]`)

	site, err := Load(dir, schema.EnglishLocale)
	require.NoError(t, err)
	require.Len(t, site.Certifications, 1)
	assert.Equal(t, "From YAML", site.Certifications[0].Name)
}

func TestLoad_OverridesGroups(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "skills.yaml", `
- name: Go
  items: [cobra, viper]
`)

	site, err := Load(dir, schema.EnglishLocale)
	require.NoError(t, err)
	assert.Equal(t, []schema.Group{{Name: "Go", Items: []string{"cobra", "viper"}}}, site.Skills)
	assert.Equal(t, DefaultTechStack(), site.TechStack)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"unparsable yaml", "experience.yaml", "company: [unterminated"},
		{"missing required field", "experience.yaml", "- {company: Acme}"},
		{"bad credential url", "certifications.yaml", "- {name: CKA, issuer: CNCF, credential_url: not-a-url}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.body)
			_, err := Load(dir, schema.EnglishLocale)
			assert.Error(t, err)
		})
	}
}

func TestDefaultsAreFreshCopies(t *testing.T) {
	a := DefaultSkills()
	a[0].Items[0] = "changed"
	assert.NotEqual(t, "changed", DefaultSkills()[0].Items[0])
}
