//nolint:revive // types is a standard Go package name pattern
package types

// Assessment is the strategic assessment slot of a blueprint.
type Assessment struct {
	AlignmentScore   string   `json:"alignment_score"`
	OverallFitness   string   `json:"overall_fitness"`
	KeyOpportunities []string `json:"key_opportunities"`
}

// Achievement is a rewritten work highlight with its rationale.
type Achievement struct {
	OriginalBullet  string `json:"original_bullet"`
	OptimizedBullet string `json:"optimized_bullet"`
	Rationale       string `json:"rationale"`
}

// Blueprint aggregates the parallel coaching steps for one resume/posting
// pair. Each slot carries its own error so a timed-out step never blanks the
// rest of the report; callers treat an empty slot with a set error as
// "not computed".
type Blueprint struct {
	Assessment      *Assessment            `json:"assessment,omitempty"`
	AssessmentError string                 `json:"assessment_error,omitempty"`
	SkillTable      []SkillMatch           `json:"skill_table,omitempty"`
	SkillTableError string                 `json:"skill_table_error,omitempty"`
	Summary         string                 `json:"editable_summary,omitempty"`
	SummaryError    string                 `json:"summary_error,omitempty"`
	Achievements    map[string]Achievement `json:"achievements,omitempty"`
}
