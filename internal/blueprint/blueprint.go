// Package blueprint coordinates the parallel coaching steps that build a
// tailoring blueprint for one resume/posting pair.
package blueprint

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/HoneyNutz/AI-Job-Coach/internal/llm"
	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

const (
	// maxWorkers bounds the parallel step pool.
	maxWorkers = 3
	// defaultStepTimeout guards each external-service call.
	defaultStepTimeout = 30 * time.Second
)

// GapAnalyzer produces the semantic skill table slot of a blueprint.
type GapAnalyzer interface {
	Analyze(ctx context.Context, resume *types.Resume, job *types.JobDescription) (*types.SkillGapReport, error)
}

// Orchestrator runs the blueprint steps. The assessment, skill table, and
// summary rewrite are independent, so they run through a bounded worker pool;
// each one writes only its own slot, merged after Wait. A step that times
// out or fails records its error in the slot and never blanks the rest.
type Orchestrator struct {
	client  llm.Client
	gap     GapAnalyzer
	timeout time.Duration
}

// NewOrchestrator creates an orchestrator with the default step timeout.
func NewOrchestrator(client llm.Client, gap GapAnalyzer) *Orchestrator {
	return &Orchestrator{client: client, gap: gap, timeout: defaultStepTimeout}
}

// WithTimeout overrides the per-step timeout.
func (o *Orchestrator) WithTimeout(d time.Duration) *Orchestrator {
	o.timeout = d
	return o
}

// Generate builds a blueprint. It always returns a usable structure: slots
// that failed carry their own error strings, and a timed-out step's result
// is discarded without retry.
func (o *Orchestrator) Generate(ctx context.Context, resume *types.Resume, job *types.JobDescription) *types.Blueprint {
	bp := &types.Blueprint{}
	if resume == nil || job == nil {
		bp.AssessmentError = "resume or job description not provided"
		return bp
	}

	var g errgroup.Group
	g.SetLimit(maxWorkers)

	g.Go(func() error {
		assessment, err := o.runAssessment(ctx, resume, job)
		if err != nil {
			bp.AssessmentError = err.Error()
			return nil
		}
		bp.Assessment = assessment
		return nil
	})

	g.Go(func() error {
		stepCtx, cancel := context.WithTimeout(ctx, o.timeout)
		defer cancel()

		report, err := o.gap.Analyze(stepCtx, resume, job)
		if err != nil {
			bp.SkillTableError = err.Error()
			return nil
		}
		if report.Error != "" {
			bp.SkillTableError = report.Error
			return nil
		}
		bp.SkillTable = report.Matches
		return nil
	})

	g.Go(func() error {
		summary, err := o.runSummaryRewrite(ctx, resume, job)
		if err != nil {
			bp.SummaryError = err.Error()
			return nil
		}
		bp.Summary = summary
		return nil
	})

	// Steps only record errors in their slots, so Wait cannot fail.
	_ = g.Wait()

	bp.Achievements = o.rewriteAchievements(ctx, resume, job)
	return bp
}

// rewriteAchievements processes each work highlight sequentially, keyed by
// "<work index>_<highlight index>". Failed rewrites are skipped; callers
// treat missing keys as "not computed".
func (o *Orchestrator) rewriteAchievements(ctx context.Context, resume *types.Resume, job *types.JobDescription) map[string]types.Achievement {
	achievements := make(map[string]types.Achievement)
	for i, work := range resume.Work {
		for j, highlight := range work.Highlights {
			achievement, err := o.runAchievementRewrite(ctx, highlight, work.Position, job)
			if err != nil {
				continue
			}
			achievements[fmt.Sprintf("%d_%d", i, j)] = *achievement
		}
	}
	return achievements
}
