package analysis

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns canned vectors keyed by exact text. Unknown texts get
// a zero vector, which scores 0 against everything.
type fakeProvider struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeProvider) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if v, ok := f.vectors[text]; ok {
			out[i] = v
		} else {
			out[i] = []float32{0, 0, 0, 0, 0}
		}
	}
	return out, nil
}

func (f *fakeProvider) ModelName() string { return "fake" }

func TestAnalyze_MissingInput(t *testing.T) {
	engine := NewEngine(&fakeProvider{})

	report, err := engine.Analyze(context.Background(), nil, &types.JobDescription{})
	require.NoError(t, err)
	assert.Equal(t, "Resume or Job Description not provided.", report.Error)

	report, err = engine.Analyze(context.Background(), &types.Resume{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Resume or Job Description not provided.", report.Error)
}

func TestAnalyze_InsufficientContent(t *testing.T) {
	engine := NewEngine(&fakeProvider{})

	// Resume with no summary and no work entries.
	report, err := engine.Analyze(context.Background(),
		&types.Resume{},
		&types.JobDescription{Qualifications: []string{"5 years of Go"}})
	require.NoError(t, err)
	assert.Equal(t, "Not enough content to perform analysis.", report.Error)
	assert.Empty(t, report.MatchResults)
	assert.Empty(t, report.OverallScore)

	// Posting with no requirements.
	report, err = engine.Analyze(context.Background(),
		&types.Resume{Basics: types.Basics{Summary: "Engineer."}},
		&types.JobDescription{Name: "Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Not enough content to perform analysis.", report.Error)
}

// Integer-component vectors whose norms are exact in float64, so the tier
// boundaries can be tested without tolerance games. Against the unit vector
// {1,0,0,0,0}: {9,7,3,2,1} has norm 12 and similarity exactly 0.75,
// {19,10,8,10,0} has norm 25 and similarity exactly 0.76.
var (
	unitExperience = []float32{1, 0, 0, 0, 0}
	vecSim60       = []float32{3, 4, 0, 0, 0}
	vecSim75       = []float32{9, 7, 3, 2, 1}
	vecSim76       = []float32{19, 10, 8, 10, 0}
	vecSim80       = []float32{4, 3, 0, 0, 0}
)

func TestAnalyze_TierBoundaries(t *testing.T) {
	provider := &fakeProvider{vectors: map[string][]float32{
		"Engineer at Acme.":  unitExperience,
		"exactly at seventy": vecSim75,
		"just above strong":  vecSim76,
	}}
	engine := NewEngine(provider)

	resume := &types.Resume{Work: []types.Work{{Position: "Engineer", Name: "Acme"}}}
	job := &types.JobDescription{
		Responsibilities: []string{"exactly at seventy", "just above strong"},
	}

	report, err := engine.Analyze(context.Background(), resume, job)
	require.NoError(t, err)
	require.Empty(t, report.Error)
	require.Len(t, report.MatchResults, 2)

	// Sorted ascending by confidence: 0.75 first, 0.76 second.
	good := report.MatchResults[0]
	strong := report.MatchResults[1]

	assert.Equal(t, 0.75, good.ConfidenceScore)
	assert.Contains(t, good.Recommendation, "Good match.")
	assert.Contains(t, good.Recommendation, "'exactly at seventy...'")

	assert.Equal(t, 0.76, strong.ConfidenceScore)
	assert.Equal(t, "Strong match. Ensure this experience is highlighted prominently.", strong.Recommendation)
}

func TestAnalyze_WeakMatchRecommendation(t *testing.T) {
	longRequirement := strings.Repeat("distributed systems ", 5) // > 50 chars
	provider := &fakeProvider{vectors: map[string][]float32{
		"Engineer at Acme.": unitExperience,
		longRequirement:     {0, 1, 0, 0, 0}, // orthogonal, similarity 0
	}}
	engine := NewEngine(provider)

	report, err := engine.Analyze(context.Background(),
		&types.Resume{Work: []types.Work{{Position: "Engineer", Name: "Acme"}}},
		&types.JobDescription{Responsibilities: []string{longRequirement}})
	require.NoError(t, err)
	require.Len(t, report.MatchResults, 1)

	rec := report.MatchResults[0].Recommendation
	assert.Contains(t, rec, "Weak match. This is a potential gap.")
	assert.Contains(t, rec, "'"+longRequirement[:50]+"...'")
}

func TestAnalyze_OverallScoreIsMeanOfConfidences(t *testing.T) {
	provider := &fakeProvider{vectors: map[string][]float32{
		"Engineer at Acme.": unitExperience,
		"r1":                vecSim60,
		"r2":                vecSim75,
		"r3":                vecSim76,
		"r4":                vecSim80,
	}}
	engine := NewEngine(provider)

	job := &types.JobDescription{Responsibilities: []string{"r1", "r2", "r3", "r4"}}
	report, err := engine.Analyze(context.Background(),
		&types.Resume{Work: []types.Work{{Position: "Engineer", Name: "Acme"}}}, job)
	require.NoError(t, err)

	// One result per requirement.
	require.Len(t, report.MatchResults, 4)

	// (0.60 + 0.75 + 0.76 + 0.80) / 4 = 0.7275
	assert.Equal(t, "72.75%", report.OverallScore)

	// Recomputing the mean from the returned results reproduces the score.
	total := 0.0
	for _, r := range report.MatchResults {
		total += r.ConfidenceScore
	}
	recomputed, err := strconv.ParseFloat(strings.TrimSuffix(report.OverallScore, "%"), 64)
	require.NoError(t, err)
	assert.InDelta(t, recomputed/100, total/4, 1e-9)

	// Ascending by confidence.
	for i := 1; i < len(report.MatchResults); i++ {
		assert.LessOrEqual(t,
			report.MatchResults[i-1].ConfidenceScore,
			report.MatchResults[i].ConfidenceScore)
	}
}

func TestAnalyze_SelfSimilarity(t *testing.T) {
	shared := []float32{3, 1, 4, 1, 5}
	provider := &fakeProvider{vectors: map[string][]float32{
		"Build low-latency systems at Acme.": shared,
		"Build low-latency systems":          shared,
	}}
	engine := NewEngine(provider)

	report, err := engine.Analyze(context.Background(),
		&types.Resume{Work: []types.Work{{Position: "Build low-latency systems", Name: "Acme"}}},
		&types.JobDescription{Responsibilities: []string{"Build low-latency systems"}})
	require.NoError(t, err)
	require.Len(t, report.MatchResults, 1)
	assert.InDelta(t, 1.0, report.MatchResults[0].ConfidenceScore, 1e-9)
}

func TestAnalyze_BestMatchSourceLabel(t *testing.T) {
	experienceText := "Senior Backend Engineer at Acme. Highlights: Built distributed caching layer reducing latency 40%"
	provider := &fakeProvider{vectors: map[string][]float32{
		"A generalist who enjoys variety.": {0, 0, 0, 0, 1},
		experienceText:                     unitExperience,
		"Experience designing low-latency distributed systems": vecSim76,
	}}
	engine := NewEngine(provider)

	resume := &types.Resume{
		Basics: types.Basics{Summary: "A generalist who enjoys variety."},
		Work: []types.Work{{
			Position:   "Senior Backend Engineer",
			Name:       "Acme",
			Highlights: []string{"Built distributed caching layer reducing latency 40%"},
		}},
	}
	job := &types.JobDescription{
		ExperienceRequirements: []string{"Experience designing low-latency distributed systems"},
	}

	report, err := engine.Analyze(context.Background(), resume, job)
	require.NoError(t, err)
	require.Len(t, report.MatchResults, 1)

	result := report.MatchResults[0]
	assert.Equal(t, "Senior Backend Engineer at Acme", result.NearestExperience)
	assert.Greater(t, result.ConfidenceScore, 0.75)
	assert.Contains(t, result.Recommendation, "Strong match.")
}

func TestAnalyze_TieBrokenByFirstIndex(t *testing.T) {
	shared := []float32{1, 1, 0, 0, 0}
	provider := &fakeProvider{vectors: map[string][]float32{
		"First summary.":    shared,
		"Engineer at Acme.": shared,
		"a requirement":     shared,
	}}
	engine := NewEngine(provider)

	resume := &types.Resume{
		Basics: types.Basics{Summary: "First summary."},
		Work:   []types.Work{{Position: "Engineer", Name: "Acme"}},
	}
	report, err := engine.Analyze(context.Background(), resume,
		&types.JobDescription{Responsibilities: []string{"a requirement"}})
	require.NoError(t, err)
	require.Len(t, report.MatchResults, 1)

	// Both experiences score identically; the first unit wins.
	assert.Equal(t, SummarySource, report.MatchResults[0].NearestExperience)
}

func TestAnalyze_ProviderErrorSurfaced(t *testing.T) {
	engine := NewEngine(&fakeProvider{err: errors.New("backend unreachable")})

	report, err := engine.Analyze(context.Background(),
		&types.Resume{Basics: types.Basics{Summary: "Engineer."}},
		&types.JobDescription{Responsibilities: []string{"Ship"}})
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "backend unreachable")
}
