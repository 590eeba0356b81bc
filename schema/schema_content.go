package schema

// Experience is one entry of the work history section.
type Experience struct {
	Company      string   `json:"company" yaml:"company" validate:"required"`
	Role         string   `json:"role" yaml:"role" validate:"required"`
	Start        string   `json:"start" yaml:"start" validate:"required"`
	End          string   `json:"end" yaml:"end"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

// Certification is one entry of the certifications section.
type Certification struct {
	Name          string `json:"name" yaml:"name" validate:"required"`
	Issuer        string `json:"issuer" yaml:"issuer" validate:"required"`
	Date          string `json:"date" yaml:"date"`
	Logo          string `json:"logo,omitempty" yaml:"logo"`
	CredentialURL string `json:"credential_url,omitempty" yaml:"credential_url" validate:"omitempty,url"`
}

// Group is a named, ordered list of items such as a skills category.
type Group struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}
