package types

import (
	"errors"
	"strings"
)

// ParsedCV is the structured résumé produced by the backend's parse step.
// The client edits it in place during review and sends it back on confirm.
// Beyond the presence check in Validate it is treated as opaque - scoring,
// embedding and matching all happen server side.
type ParsedCV struct {
	Basics       CVBasics        `json:"basics" yaml:"basics"`
	Work         []CVWork        `json:"work,omitempty" yaml:"work,omitempty"`
	Education    []CVEducation   `json:"education,omitempty" yaml:"education,omitempty"`
	Skills       []CVSkill       `json:"skills,omitempty" yaml:"skills,omitempty"`
	Projects     []CVProject     `json:"projects,omitempty" yaml:"projects,omitempty"`
	Certificates []CVCertificate `json:"certificates,omitempty" yaml:"certificates,omitempty"`
}

type CVBasics struct {
	Name     string      `json:"name" yaml:"name"`
	Label    string      `json:"label,omitempty" yaml:"label,omitempty"`
	Email    string      `json:"email,omitempty" yaml:"email,omitempty"`
	Phone    string      `json:"phone,omitempty" yaml:"phone,omitempty"`
	Summary  string      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Location *CVLocation `json:"location,omitempty" yaml:"location,omitempty"`
	Profiles []CVProfile `json:"profiles,omitempty" yaml:"profiles,omitempty"`
}

type CVLocation struct {
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
	Region  string `json:"region,omitempty" yaml:"region,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

type CVProfile struct {
	Network  string `json:"network,omitempty" yaml:"network,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
}

type CVWork struct {
	Company    string   `json:"company" yaml:"company"`
	Position   string   `json:"position,omitempty" yaml:"position,omitempty"`
	StartDate  string   `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Summary    string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

type CVEducation struct {
	Institution string `json:"institution" yaml:"institution"`
	Area        string `json:"area,omitempty" yaml:"area,omitempty"`
	StudyType   string `json:"study_type,omitempty" yaml:"study_type,omitempty"`
	StartDate   string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Score       string `json:"score,omitempty" yaml:"score,omitempty"`
}

type CVSkill struct {
	Name     string   `json:"name" yaml:"name"`
	Level    string   `json:"level,omitempty" yaml:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

type CVProject struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Highlights  []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

type CVCertificate struct {
	Name   string `json:"name" yaml:"name"`
	Issuer string `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	Date   string `json:"date,omitempty" yaml:"date,omitempty"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Validate is the presence check run before a reviewed CV is confirmed.
// Deliberately shallow: the backend owns schema validation.
func (c *ParsedCV) Validate() error {
	if c == nil {
		return errors.New("cv is empty")
	}
	if strings.TrimSpace(c.Basics.Name) == "" {
		return errors.New("cv basics.name is required")
	}
	return nil
}
