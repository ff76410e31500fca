package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/HoneyNutz/AI-Job-Coach/internal/embedding"
	"github.com/HoneyNutz/AI-Job-Coach/internal/similarity"
	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

// Recommendation tier thresholds and the requirement excerpt length. These
// are contractual: changing them changes the report output.
const (
	strongThreshold = 0.75
	goodThreshold   = 0.5
	excerptLength   = 50
)

// User-facing messages for inputs the engine cannot analyze. These are part
// of the report contract, not transient errors.
const (
	msgMissingInput        = "Resume or Job Description not provided."
	msgInsufficientContent = "Not enough content to perform analysis."
)

// Engine matches job requirements against resume experiences using vector
// embeddings. It holds no per-call state; a single Engine is safe to share.
type Engine struct {
	provider embedding.Provider
}

// NewEngine creates a matching engine on top of an embedding provider.
func NewEngine(provider embedding.Provider) *Engine {
	return &Engine{provider: provider}
}

// Analyze scores a resume against a job posting. Input problems (missing or
// empty documents) are recovered into a report with its Error field set; a
// non-nil error is returned only for embedding-provider failures, which are
// unexpected after a successful provider construction.
func (e *Engine) Analyze(ctx context.Context, resume *types.Resume, job *types.JobDescription) (*types.AnalysisReport, error) {
	if resume == nil || job == nil {
		return &types.AnalysisReport{Error: msgMissingInput}, nil
	}

	experiences := ExperienceUnits(resume)
	requirements := RequirementUnits(job)
	if len(experiences) == 0 || len(requirements) == 0 {
		return &types.AnalysisReport{Error: msgInsufficientContent}, nil
	}

	experienceTexts := make([]string, len(experiences))
	for i, exp := range experiences {
		experienceTexts[i] = exp.Text
	}

	experienceVectors, err := e.provider.Embed(ctx, experienceTexts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume experiences: %w", err)
	}
	requirementVectors, err := e.provider.Embed(ctx, requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job requirements: %w", err)
	}

	// Rows are requirements, columns are experiences.
	scores := similarity.Matrix(requirementVectors, experienceVectors)

	results := make([]types.MatchResult, 0, len(requirements))
	total := 0.0
	for i, requirement := range requirements {
		bestIdx, bestScore := similarity.ArgMax(scores[i])
		matched := experiences[bestIdx]

		results = append(results, types.MatchResult{
			JobRequirement:    requirement,
			BestResumeMatch:   matched.Text,
			NearestExperience: matched.Source,
			ConfidenceScore:   bestScore,
			Recommendation:    recommendation(requirement, bestScore),
		})
		total += bestScore
	}

	// Weakest matches first: the most actionable gaps lead the report.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ConfidenceScore < results[j].ConfidenceScore
	})

	overall := total / float64(len(requirements))
	return &types.AnalysisReport{
		OverallScore: fmt.Sprintf("%.2f%%", overall*100),
		MatchResults: results,
	}, nil
}

// recommendation maps a confidence score to its tier text. The boundaries
// are strict: 0.76 is a strong match, 0.75 is a good match.
func recommendation(requirement string, score float64) string {
	switch {
	case score > strongThreshold:
		return "Strong match. Ensure this experience is highlighted prominently."
	case score > goodThreshold:
		return fmt.Sprintf("Good match. Consider tailoring the language in your resume to more closely mirror the keywords in the requirement: '%s...'", excerpt(requirement))
	default:
		return fmt.Sprintf("Weak match. This is a potential gap. Consider adding a project or highlighting a different aspect of your experience that addresses: '%s...'", excerpt(requirement))
	}
}

// excerpt truncates a requirement to excerptLength characters for inclusion
// in recommendation text.
func excerpt(requirement string) string {
	runes := []rune(requirement)
	if len(runes) <= excerptLength {
		return requirement
	}
	return string(runes[:excerptLength])
}
