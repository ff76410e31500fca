// Package types provides type definitions for structured data used throughout the job coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Resume represents a candidate's resume following the JSON Resume schema
// (jsonresume.org). It is consumed read-only by the matching engine.
type Resume struct {
	Basics    Basics      `json:"basics"`
	Work      []Work      `json:"work,omitempty"`
	Education []Education `json:"education,omitempty"`
	Skills    []Skill     `json:"skills,omitempty"`
	Projects  []Project   `json:"projects,omitempty"`
	Languages []Language  `json:"languages,omitempty"`
}

// Basics holds the candidate's identity and professional summary.
type Basics struct {
	Name     string    `json:"name,omitempty"`
	Label    string    `json:"label,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"`
}

// Location is a postal location for the candidate.
type Location struct {
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Profile is a social or professional network profile.
type Profile struct {
	Network  string `json:"network,omitempty"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Work is a single work history entry.
type Work struct {
	Name       string   `json:"name,omitempty"` // Employer name
	Position   string   `json:"position,omitempty"`
	URL        string   `json:"url,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution,omitempty"`
	Area        string `json:"area,omitempty"`
	StudyType   string `json:"studyType,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// Skill is an explicit skill entry with optional keywords.
type Skill struct {
	Name     string   `json:"name,omitempty"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Project is a notable project entry.
type Project struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Language is a spoken language entry.
type Language struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

// IsEmpty reports whether the resume carries no analyzable content:
// no summary and no work entries with meaningful text.
func (r *Resume) IsEmpty() bool {
	if r == nil {
		return true
	}
	if strings.TrimSpace(r.Basics.Summary) != "" {
		return false
	}
	for _, w := range r.Work {
		if strings.TrimSpace(w.Position) != "" || strings.TrimSpace(w.Summary) != "" || len(w.Highlights) > 0 {
			return false
		}
	}
	return true
}
