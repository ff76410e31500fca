//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// JobDescription represents a structured job posting following the JSON Resume
// job-description schema (jsonresume.org/job-description-schema). The four
// requirement arrays plus the optional comma-separated Skills string are the
// inputs to the matching engine.
type JobDescription struct {
	Name                   string   `json:"name,omitempty"` // Job title
	Description            string   `json:"description,omitempty"`
	HiringOrganization     string   `json:"hiringOrganization,omitempty"`
	JobLocation            string   `json:"jobLocation,omitempty"`
	EmploymentType         string   `json:"employmentType,omitempty"`
	DatePosted             string   `json:"datePosted,omitempty"`
	URL                    string   `json:"url,omitempty"`
	Skills                 string   `json:"skills,omitempty"` // Comma-separated
	Responsibilities       []string `json:"responsibilities,omitempty"`
	Qualifications         []string `json:"qualifications,omitempty"`
	EducationRequirements  []string `json:"educationRequirements,omitempty"`
	ExperienceRequirements []string `json:"experienceRequirements,omitempty"`
}

// SkillList splits the comma-separated Skills field into trimmed, non-empty
// entries, preserving order.
func (j *JobDescription) SkillList() []string {
	if j == nil || strings.TrimSpace(j.Skills) == "" {
		return nil
	}
	parts := strings.Split(j.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// IsEmpty reports whether the posting carries no requirement content.
func (j *JobDescription) IsEmpty() bool {
	if j == nil {
		return true
	}
	return len(j.Responsibilities) == 0 &&
		len(j.Qualifications) == 0 &&
		len(j.EducationRequirements) == 0 &&
		len(j.ExperienceRequirements) == 0 &&
		strings.TrimSpace(j.Skills) == ""
}
