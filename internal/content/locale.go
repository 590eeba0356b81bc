package content

import (
	"embed"
	"fmt"
	"strings"

	"github.com/khaledelg/portfolio/schema"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Strings maps a translation key to its text in one locale.
type Strings map[string]string

// Catalog holds the strings of every supported locale.
type Catalog struct {
	defaultLocale schema.Locale
	locales       map[schema.Locale]Strings
}

// Translator resolves keys for one locale with fallback.
type Translator struct {
	Locale   schema.Locale
	primary  Strings
	fallback Strings
}

// NewCatalog loads the embedded locale files.
func NewCatalog(defaultLocale schema.Locale) (*Catalog, error) {
	if _, ok := schema.ValidLocales[defaultLocale]; !ok {
		return nil, fmt.Errorf("unsupported default locale '%s'", defaultLocale)
	}
	c := &Catalog{
		defaultLocale: defaultLocale,
		locales:       make(map[schema.Locale]Strings, len(schema.ValidLocales)),
	}
	for locale := range schema.ValidLocales {
		raw, err := localeFS.ReadFile("locales/" + string(locale) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("missing locale %s: %w", locale, err)
		}
		var strs Strings
		if err := yaml.Unmarshal(raw, &strs); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", locale, err)
		}
		c.locales[locale] = strs
	}
	return c, nil
}

// DefaultLocale returns the locale used when a request does not ask for one.
func (c *Catalog) DefaultLocale() schema.Locale {
	return c.defaultLocale
}

// Resolve maps a requested language to a supported locale.
// Region suffixes are ignored ("fr-CA" resolves to fr).
func (c *Catalog) Resolve(lang string) schema.Locale {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if _, ok := c.locales[schema.Locale(lang)]; ok {
		return schema.Locale(lang)
	}
	return c.defaultLocale
}

// Translator returns a translator for lang. Missing keys fall back to English.
func (c *Catalog) Translator(lang string) *Translator {
	locale := c.Resolve(lang)
	return &Translator{
		Locale:   locale,
		primary:  c.locales[locale],
		fallback: c.locales[schema.EnglishLocale],
	}
}

// T returns the text for key, or the key itself when no locale defines it.
func (t *Translator) T(key string) string {
	if s, ok := t.primary[key]; ok {
		return s
	}
	if s, ok := t.fallback[key]; ok {
		return s
	}
	return key
}
