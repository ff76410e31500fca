package skills

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/HoneyNutz/AI-Job-Coach/internal/analysis"
	"github.com/HoneyNutz/AI-Job-Coach/internal/embedding"
	"github.com/HoneyNutz/AI-Job-Coach/internal/similarity"
	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

// Skill-gap thresholds. A job skill counts as found above foundThreshold;
// priority is the inverse of match quality, so weaker coverage means more
// urgent remediation.
const (
	foundThreshold    = 0.7
	highPriorityBelow = 0.5
	lowPriorityFrom   = 0.8
	maxMatches        = 8
)

const msgNoSkills = "Not enough skill content to perform analysis."

// Analyzer computes per-skill coverage of a job posting by a resume, using
// exact matching first and semantic similarity as the fallback.
type Analyzer struct {
	provider  embedding.Provider
	extractor Extractor
}

// NewAnalyzer creates a skill-gap analyzer. A nil extractor selects the
// default lexical heuristics.
func NewAnalyzer(provider embedding.Provider, extractor Extractor) *Analyzer {
	if extractor == nil {
		extractor = NewLexicalExtractor()
	}
	return &Analyzer{provider: provider, extractor: extractor}
}

// Analyze scores every job skill against the resume's skills. Insufficient
// input becomes a report with Error set; a non-nil error indicates an
// embedding-provider failure.
func (a *Analyzer) Analyze(ctx context.Context, resume *types.Resume, job *types.JobDescription) (*types.SkillGapReport, error) {
	jobSkills := a.jobSkills(job)
	resumeSkills := a.resumeSkills(resume)
	if len(jobSkills) == 0 || len(resumeSkills) == 0 {
		return &types.SkillGapReport{Error: msgNoSkills}, nil
	}

	// Exact case-insensitive matches never need an embedding call.
	byLower := make(map[string]string, len(resumeSkills))
	for _, skill := range resumeSkills {
		if _, ok := byLower[strings.ToLower(skill)]; !ok {
			byLower[strings.ToLower(skill)] = skill
		}
	}

	matches := make([]types.SkillMatch, len(jobSkills))
	var pending []int
	for i, jobSkill := range jobSkills {
		if resumeSkill, ok := byLower[strings.ToLower(jobSkill)]; ok {
			matches[i] = newMatch(jobSkill, resumeSkill, 1.0, true)
			continue
		}
		pending = append(pending, i)
	}

	if len(pending) > 0 {
		pendingTexts := make([]string, len(pending))
		for k, i := range pending {
			pendingTexts[k] = jobSkills[i]
		}

		jobVectors, err := a.provider.Embed(ctx, pendingTexts)
		if err != nil {
			return nil, fmt.Errorf("failed to embed job skills: %w", err)
		}
		resumeVectors, err := a.provider.Embed(ctx, resumeSkills)
		if err != nil {
			return nil, fmt.Errorf("failed to embed resume skills: %w", err)
		}

		scores := similarity.Matrix(jobVectors, resumeVectors)
		for k, i := range pending {
			bestIdx, bestScore := similarity.ArgMax(scores[k])
			found := bestScore > foundThreshold
			resumeSkill := ""
			if found && bestIdx >= 0 {
				resumeSkill = resumeSkills[bestIdx]
			}
			matches[i] = newMatch(jobSkills[i], resumeSkill, bestScore, found)
		}
	}

	// Most urgent first: priority rank, then weakest similarity.
	sort.SliceStable(matches, func(i, j int) bool {
		ri, rj := priorityRank(matches[i].Priority), priorityRank(matches[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return matches[i].Similarity < matches[j].Similarity
	})

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}

	return &types.SkillGapReport{Matches: matches}, nil
}

// jobSkills merges the posting's explicit skill list with terms inferred
// from its requirement text.
func (a *Analyzer) jobSkills(job *types.JobDescription) []string {
	if job == nil {
		return nil
	}
	skills := job.SkillList()
	for _, requirement := range analysis.RequirementUnits(job) {
		skills = append(skills, a.extractor.Extract(requirement)...)
	}
	return Dedupe(skills)
}

// resumeSkills merges the explicit skills section (names and keywords) with
// terms extracted from the summary and work highlights.
func (a *Analyzer) resumeSkills(resume *types.Resume) []string {
	if resume == nil {
		return nil
	}
	var skills []string
	for _, skill := range resume.Skills {
		if skill.Name != "" {
			skills = append(skills, skill.Name)
		}
		skills = append(skills, skill.Keywords...)
	}
	skills = append(skills, a.extractor.Extract(resume.Basics.Summary)...)
	for _, work := range resume.Work {
		skills = append(skills, a.extractor.Extract(work.Summary)...)
		for _, highlight := range work.Highlights {
			skills = append(skills, a.extractor.Extract(highlight)...)
		}
	}
	return Dedupe(skills)
}

func newMatch(jobSkill, resumeSkill string, sim float64, found bool) types.SkillMatch {
	priority := priorityFor(sim)
	return types.SkillMatch{
		JobSkill:    jobSkill,
		ResumeSkill: resumeSkill,
		Similarity:  sim,
		Found:       found,
		Priority:    priority,
		Action:      actionFor(jobSkill, resumeSkill, priority, found),
	}
}

func priorityFor(sim float64) types.Priority {
	switch {
	case sim < highPriorityBelow:
		return types.PriorityHigh
	case sim < lowPriorityFrom:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

func priorityRank(p types.Priority) int {
	switch p {
	case types.PriorityHigh:
		return 0
	case types.PriorityMedium:
		return 1
	default:
		return 2
	}
}

func actionFor(jobSkill, resumeSkill string, priority types.Priority, found bool) string {
	switch {
	case found && priority == types.PriorityLow:
		return fmt.Sprintf("Covered by '%s'. Keep it prominent in your resume.", resumeSkill)
	case found:
		return fmt.Sprintf("Partially covered by '%s'. Align your wording with the posting's phrasing for '%s'.", resumeSkill, jobSkill)
	case priority == types.PriorityHigh:
		return fmt.Sprintf("Add concrete evidence of '%s'; the posting asks for it and nothing comparable was found.", jobSkill)
	default:
		return fmt.Sprintf("Consider adding a project or bullet that demonstrates '%s'.", jobSkill)
	}
}
