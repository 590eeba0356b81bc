package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the CLI output.
	OutputMode string

	// Locale represents a supported UI language.
	Locale string

	// RecencyLabel classifies a project by how recently it was pushed to.
	RecencyLabel string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All locales supported.
const (
	EnglishLocale Locale = "en" // default
	FrenchLocale  Locale = "fr"
)

// All recency labels.
const (
	ActiveLabel  RecencyLabel = "Active"
	RecentLabel  RecencyLabel = "Recent"
	DormantLabel RecencyLabel = "Dormant"
	UnknownLabel RecencyLabel = "Unknown"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidLocales lists all valid locales.
var ValidLocales = map[Locale]struct{}{
	EnglishLocale: {},
	FrenchLocale:  {},
}
