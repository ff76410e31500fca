// Package analysis implements the semantic matching engine: it flattens a
// resume and a job posting into comparable text units, embeds them, and pairs
// every job requirement with its best-matching resume experience.
package analysis

import (
	"strings"

	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

// SummarySource labels the experience unit built from the resume's overall
// summary.
const SummarySource = "Overall Summary"

// ExperienceUnit is one comparable slice of the candidate's history: the
// normalized text plus a label identifying where it came from.
type ExperienceUnit struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// ExperienceUnits flattens a resume into experience units: one for the
// overall summary when present, then one per work entry combining position,
// employer, summary, and highlights. Entries with no meaningful text are
// skipped.
func ExperienceUnits(resume *types.Resume) []ExperienceUnit {
	if resume == nil {
		return nil
	}

	var units []ExperienceUnit

	if summary := strings.TrimSpace(resume.Basics.Summary); summary != "" {
		units = append(units, ExperienceUnit{Source: SummarySource, Text: summary})
	}

	for _, work := range resume.Work {
		position := strings.TrimSpace(work.Position)
		employer := strings.TrimSpace(work.Name)
		summary := strings.TrimSpace(work.Summary)
		highlights := joinNonEmpty(work.Highlights)

		if position == "" && summary == "" && highlights == "" {
			continue
		}

		var sb strings.Builder
		sb.WriteString(position)
		sb.WriteString(" at ")
		sb.WriteString(employer)
		sb.WriteString(".")
		if summary != "" {
			sb.WriteString(" ")
			sb.WriteString(summary)
		}
		if highlights != "" {
			sb.WriteString(" Highlights: ")
			sb.WriteString(highlights)
		}

		units = append(units, ExperienceUnit{
			Source: position + " at " + employer,
			Text:   strings.TrimSpace(sb.String()),
		})
	}

	return units
}

// RequirementUnits flattens a job posting into an order-preserving list of
// requirement strings: responsibilities, qualifications, education and
// experience requirements, then a synthetic unit for the explicit skills
// string when present. Duplicates are allowed.
func RequirementUnits(job *types.JobDescription) []string {
	if job == nil {
		return nil
	}

	total := len(job.Responsibilities) + len(job.Qualifications) +
		len(job.EducationRequirements) + len(job.ExperienceRequirements)
	requirements := make([]string, 0, total+1)
	requirements = append(requirements, job.Responsibilities...)
	requirements = append(requirements, job.Qualifications...)
	requirements = append(requirements, job.EducationRequirements...)
	requirements = append(requirements, job.ExperienceRequirements...)

	if skills := strings.TrimSpace(job.Skills); skills != "" {
		requirements = append(requirements, "Key skills include: "+skills)
	}

	return requirements
}

func joinNonEmpty(items []string) string {
	var kept []string
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}
