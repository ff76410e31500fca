package blueprint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HoneyNutz/AI-Job-Coach/internal/llm"
	"github.com/HoneyNutz/AI-Job-Coach/internal/prompts"
	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

// defaultRationale fills in when the model omits one for a rewrite.
const defaultRationale = "Optimized using STAR-D principles based on the target role."

func (o *Orchestrator) runAssessment(ctx context.Context, resume *types.Resume, job *types.JobDescription) (*types.Assessment, error) {
	stepCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	prompt := prompts.Format(prompts.MustGet("coach.json", "assessment"), map[string]string{
		"ResumeJSON": mustJSON(resume),
		"JobJSON":    mustJSON(job),
	})

	response, err := o.client.GenerateJSON(stepCtx, prompt, llm.TaskCoaching)
	if err != nil {
		return nil, fmt.Errorf("strategic assessment failed: %w", err)
	}

	var assessment types.Assessment
	if err := json.Unmarshal([]byte(response), &assessment); err != nil {
		return nil, fmt.Errorf("strategic assessment returned invalid JSON: %w", err)
	}
	return &assessment, nil
}

func (o *Orchestrator) runSummaryRewrite(ctx context.Context, resume *types.Resume, job *types.JobDescription) (string, error) {
	stepCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	top := job.Responsibilities
	if len(top) > 3 {
		top = top[:3]
	}

	prompt := prompts.Format(prompts.MustGet("coach.json", "summary-rewrite"), map[string]string{
		"Summary":         resume.Basics.Summary,
		"TopRequirements": mustJSON(top),
	})

	summary, err := o.client.GenerateContent(stepCtx, prompt, llm.TaskCoaching)
	if err != nil {
		return "", fmt.Errorf("summary rewrite failed: %w", err)
	}
	return strings.TrimSpace(summary), nil
}

func (o *Orchestrator) runAchievementRewrite(ctx context.Context, highlight, role string, job *types.JobDescription) (*types.Achievement, error) {
	stepCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	jobContext := make([]string, 0, len(job.Responsibilities)+len(job.Qualifications))
	jobContext = append(jobContext, job.Responsibilities...)
	jobContext = append(jobContext, job.Qualifications...)

	prompt := prompts.Format(prompts.MustGet("coach.json", "achievement-rewrite"), map[string]string{
		"Highlight":  highlight,
		"Role":       role,
		"JobContext": mustJSON(jobContext),
	})

	response, err := o.client.GenerateJSON(stepCtx, prompt, llm.TaskExtraction)
	if err != nil {
		return nil, fmt.Errorf("achievement rewrite failed: %w", err)
	}

	var achievement types.Achievement
	if err := json.Unmarshal([]byte(response), &achievement); err != nil {
		return nil, fmt.Errorf("achievement rewrite returned invalid JSON: %w", err)
	}

	if achievement.OriginalBullet == "" {
		achievement.OriginalBullet = highlight
	}
	if achievement.OptimizedBullet == "" {
		achievement.OptimizedBullet = highlight
	}
	if achievement.Rationale == "" {
		achievement.Rationale = defaultRationale
	}
	return &achievement, nil
}

// mustJSON marshals prompt inputs. The input types marshal without error;
// a failure would be a programming bug, so the fallback is an empty object.
func mustJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
