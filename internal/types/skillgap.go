//nolint:revive // types is a standard Go package name pattern
package types

// Priority buckets a skill gap by remediation urgency. Lower match quality
// means higher priority.
type Priority string

// Priority levels for skill gap remediation.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// SkillMatch describes how well one job skill is covered by the resume.
// ResumeSkill is the best-matching resume skill, empty when nothing matched.
type SkillMatch struct {
	JobSkill    string   `json:"job_skill"`
	ResumeSkill string   `json:"resume_skill,omitempty"`
	Similarity  float64  `json:"similarity"`
	Found       bool     `json:"found"`
	Priority    Priority `json:"priority"`
	Action      string   `json:"action"`
}

// SkillGapReport is the ranked skill coverage table for a posting, capped to
// the most actionable entries.
type SkillGapReport struct {
	Matches []SkillMatch `json:"matches,omitempty"`
	Error   string       `json:"error,omitempty"`
}
