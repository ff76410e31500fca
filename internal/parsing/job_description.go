// Package parsing turns raw job posting text into a structured
// JobDescription using LLM extraction.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/HoneyNutz/AI-Job-Coach/internal/llm"
	"github.com/HoneyNutz/AI-Job-Coach/internal/prompts"
	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

// Prompt input limits, in bytes of posting text.
const (
	extractTextLimit = 4000
	inferTextLimit   = 2000
)

// rawJobDescription tolerates list fields arriving as either JSON arrays or
// newline-separated strings; models produce both.
type rawJobDescription struct {
	Name                   string          `json:"name"`
	Description            string          `json:"description"`
	HiringOrganization     string          `json:"hiringOrganization"`
	JobLocation            string          `json:"jobLocation"`
	EmploymentType         string          `json:"employmentType"`
	DatePosted             string          `json:"datePosted"`
	Skills                 string          `json:"skills"`
	Responsibilities       json.RawMessage `json:"responsibilities"`
	Qualifications         json.RawMessage `json:"qualifications"`
	EducationRequirements  json.RawMessage `json:"educationRequirements"`
	ExperienceRequirements json.RawMessage `json:"experienceRequirements"`
}

// ExtractJobDescription parses raw job posting text into a structured
// JobDescription. When the model returns something that is not valid JSON,
// the raw text is preserved as the description rather than failing the whole
// ingestion.
func ExtractJobDescription(ctx context.Context, client llm.Client, rawText string) (*types.JobDescription, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &ParseError{Message: "job posting text is empty"}
	}

	prompt := prompts.Format(prompts.MustGet("parsing.json", "extract-job-details"), map[string]string{
		"JobText": truncate(rawText, extractTextLimit),
	})

	response, err := client.GenerateJSON(ctx, prompt, llm.TaskExtraction)
	if err != nil {
		return nil, &APICallError{Message: "job detail extraction failed", Cause: err}
	}

	var raw rawJobDescription
	if err := json.Unmarshal([]byte(response), &raw); err != nil {
		// Fall back to carrying the raw posting as the description.
		return &types.JobDescription{Description: rawText}, nil
	}

	return &types.JobDescription{
		Name:                   raw.Name,
		Description:            raw.Description,
		HiringOrganization:     raw.HiringOrganization,
		JobLocation:            raw.JobLocation,
		EmploymentType:         raw.EmploymentType,
		DatePosted:             raw.DatePosted,
		Skills:                 raw.Skills,
		Responsibilities:       coerceList(raw.Responsibilities),
		Qualifications:         coerceList(raw.Qualifications),
		EducationRequirements:  coerceList(raw.EducationRequirements),
		ExperienceRequirements: coerceList(raw.ExperienceRequirements),
	}, nil
}

// InferSkills asks the model for skills a posting implies but does not list.
// Returns a comma-separated skills string, empty when inference fails to
// produce valid JSON.
func InferSkills(ctx context.Context, client llm.Client, rawText string) (string, error) {
	if strings.TrimSpace(rawText) == "" {
		return "", nil
	}

	prompt := prompts.Format(prompts.MustGet("parsing.json", "infer-skills"), map[string]string{
		"JobText": truncate(rawText, inferTextLimit),
	})

	response, err := client.GenerateJSON(ctx, prompt, llm.TaskExtraction)
	if err != nil {
		return "", &APICallError{Message: "skill inference failed", Cause: err}
	}

	var parsed struct {
		Skills string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		return "", nil
	}
	return strings.TrimSpace(parsed.Skills), nil
}

// MergeInferredSkills appends inferred skills to a posting's skills string,
// skipping entries already present (case-insensitive). It returns the skills
// that were actually added.
func MergeInferredSkills(job *types.JobDescription, inferred string) []string {
	if job == nil || strings.TrimSpace(inferred) == "" {
		return nil
	}

	existing := make(map[string]bool)
	for _, skill := range job.SkillList() {
		existing[strings.ToLower(skill)] = true
	}

	var added []string
	for _, skill := range strings.Split(inferred, ",") {
		skill = strings.TrimSpace(skill)
		if skill == "" || existing[strings.ToLower(skill)] {
			continue
		}
		existing[strings.ToLower(skill)] = true
		added = append(added, skill)
	}

	if len(added) > 0 {
		merged := append(job.SkillList(), added...)
		job.Skills = strings.Join(merged, ", ")
	}
	return added
}

// coerceList accepts either a JSON array of strings or a single string with
// newline-separated items.
func coerceList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return trimNonEmpty(list)
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return trimNonEmpty(strings.Split(single, "\n"))
	}

	return nil
}

func trimNonEmpty(items []string) []string {
	var out []string
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
