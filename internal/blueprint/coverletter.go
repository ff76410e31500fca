package blueprint

import (
	"context"
	"fmt"
	"strings"

	"github.com/HoneyNutz/AI-Job-Coach/internal/llm"
	"github.com/HoneyNutz/AI-Job-Coach/internal/prompts"
	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

// CoverLetter generates a targeted cover letter for the resume/posting pair.
// An empty recipient falls back to "Hiring Manager".
func (o *Orchestrator) CoverLetter(ctx context.Context, resume *types.Resume, job *types.JobDescription, recipient string) (string, error) {
	if resume == nil || resume.IsEmpty() || job == nil || job.IsEmpty() {
		return "", fmt.Errorf("resume or job description not provided")
	}
	if strings.TrimSpace(recipient) == "" {
		recipient = "Hiring Manager"
	}

	stepCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	prompt := prompts.Format(prompts.MustGet("coach.json", "cover-letter"), map[string]string{
		"ResumeJSON":    mustJSON(resume),
		"JobJSON":       mustJSON(job),
		"CandidateName": resume.Basics.Name,
		"RecipientName": recipient,
		"CompanyName":   job.HiringOrganization,
		"JobTitle":      job.Name,
	})

	letter, err := o.client.GenerateContent(stepCtx, prompt, llm.TaskCoaching)
	if err != nil {
		return "", fmt.Errorf("cover letter generation failed: %w", err)
	}
	return strings.TrimSpace(letter), nil
}
