//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult pairs one job requirement with its best-matching resume
// experience and a confidence-scored recommendation.
type MatchResult struct {
	JobRequirement    string  `json:"job_requirement"`
	BestResumeMatch   string  `json:"best_resume_match"`
	NearestExperience string  `json:"nearest_experience"`
	ConfidenceScore   float64 `json:"confidence_score"`
	Recommendation    string  `json:"recommendation"`
}

// AnalysisReport is the terminal output of a resume/job analysis pass.
// OverallScore is the mean confidence formatted as a percentage (e.g.
// "73.45%"). MatchResults is sorted ascending by confidence so the weakest
// matches surface first. When the inputs yield no comparable units, Error is
// set and the other fields are empty.
type AnalysisReport struct {
	OverallScore string        `json:"overall_score,omitempty"`
	MatchResults []MatchResult `json:"match_results,omitempty"`
	Error        string        `json:"error,omitempty"`
}
