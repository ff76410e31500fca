package blueprint

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/HoneyNutz/AI-Job-Coach/internal/llm"
	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routingClient answers each prompt based on which coaching template produced
// it. Error injection per step uses the same routing.
type routingClient struct {
	assessmentErr  error
	summaryErr     error
	achievementErr error
	blockOnSummary bool
}

func (f *routingClient) route(ctx context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "strategic assessment"):
		if f.assessmentErr != nil {
			return "", f.assessmentErr
		}
		return `{"alignment_score": "78%", "overall_fitness": "Strong candidate", "key_opportunities": ["Cloud experience", "Leadership framing", "Metrics"]}`, nil
	case strings.Contains(prompt, "professional summary"):
		if f.blockOnSummary {
			<-ctx.Done()
			return "", ctx.Err()
		}
		if f.summaryErr != nil {
			return "", f.summaryErr
		}
		return "Seasoned backend engineer focused on distributed systems.\n", nil
	case strings.Contains(prompt, "STAR-D"):
		if f.achievementErr != nil {
			return "", f.achievementErr
		}
		return `{"original_bullet": "Built services", "optimized_bullet": "Built services cutting latency by X%", "rationale": "Quantified impact reads better to ATS scans."}`, nil
	case strings.Contains(prompt, "cover letter"):
		return "Dear Hiring Manager,\n\nI am excited to apply.\n", nil
	}
	return "", errors.New("unroutable prompt")
}

func (f *routingClient) GenerateContent(ctx context.Context, prompt string, _ llm.Task) (string, error) {
	return f.route(ctx, prompt)
}

func (f *routingClient) GenerateJSON(ctx context.Context, prompt string, _ llm.Task) (string, error) {
	return f.route(ctx, prompt)
}

func (f *routingClient) Close() error { return nil }

type fakeGap struct {
	report *types.SkillGapReport
	err    error
}

func (f *fakeGap) Analyze(_ context.Context, _ *types.Resume, _ *types.JobDescription) (*types.SkillGapReport, error) {
	return f.report, f.err
}

func testResume() *types.Resume {
	return &types.Resume{
		Basics: types.Basics{
			Name:    "Jane Doe",
			Summary: "Backend engineer with ten years of experience.",
		},
		Work: []types.Work{
			{
				Position:   "Senior Engineer",
				Highlights: []string{"Built services", "Led migrations"},
			},
		},
	}
}

func testJob() *types.JobDescription {
	return &types.JobDescription{
		Name:               "Staff Engineer",
		HiringOrganization: "Acme",
		Responsibilities:   []string{"Design distributed systems", "Mentor engineers"},
		Qualifications:     []string{"10 years experience"},
		Skills:             "Go, Kubernetes",
	}
}

func TestGenerate_AllStepsSucceed(t *testing.T) {
	gap := &fakeGap{report: &types.SkillGapReport{
		Matches: []types.SkillMatch{{JobSkill: "Go", ResumeSkill: "Go", Similarity: 1.0, Found: true, Priority: types.PriorityLow}},
	}}
	o := NewOrchestrator(&routingClient{}, gap)

	bp := o.Generate(context.Background(), testResume(), testJob())

	require.NotNil(t, bp.Assessment)
	assert.Equal(t, "78%", bp.Assessment.AlignmentScore)
	assert.Len(t, bp.Assessment.KeyOpportunities, 3)
	assert.Empty(t, bp.AssessmentError)

	require.Len(t, bp.SkillTable, 1)
	assert.Empty(t, bp.SkillTableError)

	assert.Equal(t, "Seasoned backend engineer focused on distributed systems.", bp.Summary)
	assert.Empty(t, bp.SummaryError)

	require.Len(t, bp.Achievements, 2)
	first, ok := bp.Achievements["0_0"]
	require.True(t, ok)
	assert.Equal(t, "Built services cutting latency by X%", first.OptimizedBullet)
	assert.NotEmpty(t, first.Rationale)
	_, ok = bp.Achievements["0_1"]
	assert.True(t, ok)
}

func TestGenerate_MissingInput(t *testing.T) {
	o := NewOrchestrator(&routingClient{}, &fakeGap{})

	bp := o.Generate(context.Background(), nil, testJob())

	require.NotNil(t, bp)
	assert.NotEmpty(t, bp.AssessmentError)
	assert.Nil(t, bp.Assessment)
}

func TestGenerate_TimedOutStepLeavesOthersPopulated(t *testing.T) {
	gap := &fakeGap{report: &types.SkillGapReport{
		Matches: []types.SkillMatch{{JobSkill: "Go", Found: true}},
	}}
	client := &routingClient{blockOnSummary: true}
	o := NewOrchestrator(client, gap).WithTimeout(50 * time.Millisecond)

	bp := o.Generate(context.Background(), testResume(), testJob())

	assert.NotEmpty(t, bp.SummaryError)
	assert.Empty(t, bp.Summary)

	require.NotNil(t, bp.Assessment)
	assert.Len(t, bp.SkillTable, 1)
	assert.Len(t, bp.Achievements, 2)
}

func TestGenerate_GapAnalyzerError(t *testing.T) {
	gap := &fakeGap{err: errors.New("embedding service unavailable")}
	o := NewOrchestrator(&routingClient{}, gap)

	bp := o.Generate(context.Background(), testResume(), testJob())

	assert.Equal(t, "embedding service unavailable", bp.SkillTableError)
	assert.Empty(t, bp.SkillTable)
	require.NotNil(t, bp.Assessment)
}

func TestGenerate_GapReportErrorPropagates(t *testing.T) {
	gap := &fakeGap{report: &types.SkillGapReport{Error: "Not enough skill content to perform analysis."}}
	o := NewOrchestrator(&routingClient{}, gap)

	bp := o.Generate(context.Background(), testResume(), testJob())

	assert.Equal(t, "Not enough skill content to perform analysis.", bp.SkillTableError)
	assert.Empty(t, bp.SkillTable)
}

func TestGenerate_FailedAchievementsSkipped(t *testing.T) {
	gap := &fakeGap{report: &types.SkillGapReport{}}
	client := &routingClient{achievementErr: errors.New("model overloaded")}
	o := NewOrchestrator(client, gap)

	bp := o.Generate(context.Background(), testResume(), testJob())

	assert.Empty(t, bp.Achievements)
	require.NotNil(t, bp.Assessment)
	assert.NotEmpty(t, bp.Summary)
}

// emptyJSONClient returns an empty object for every JSON call, exercising the
// default fills on achievement rewrites.
type emptyJSONClient struct{ routingClient }

func (f *emptyJSONClient) GenerateJSON(_ context.Context, _ string, _ llm.Task) (string, error) {
	return `{}`, nil
}

func TestGenerate_AchievementDefaultsFilled(t *testing.T) {
	o := NewOrchestrator(&emptyJSONClient{}, &fakeGap{report: &types.SkillGapReport{}})

	achievement, err := o.runAchievementRewrite(context.Background(), "Shipped the billing system", "Engineer", testJob())
	require.NoError(t, err)
	assert.Equal(t, "Shipped the billing system", achievement.OriginalBullet)
	assert.Equal(t, "Shipped the billing system", achievement.OptimizedBullet)
	assert.Equal(t, defaultRationale, achievement.Rationale)
}

func TestCoverLetter(t *testing.T) {
	o := NewOrchestrator(&routingClient{}, &fakeGap{})

	letter, err := o.CoverLetter(context.Background(), testResume(), testJob(), "")
	require.NoError(t, err)
	assert.Contains(t, letter, "Dear Hiring Manager")
}

func TestCoverLetter_MissingInput(t *testing.T) {
	o := NewOrchestrator(&routingClient{}, &fakeGap{})

	_, err := o.CoverLetter(context.Background(), &types.Resume{}, testJob(), "")
	assert.Error(t, err)
}
