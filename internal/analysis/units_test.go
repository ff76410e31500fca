package analysis

import (
	"testing"

	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceUnits_SummaryAndWork(t *testing.T) {
	resume := &types.Resume{
		Basics: types.Basics{Summary: "Backend engineer with 10 years of experience."},
		Work: []types.Work{
			{
				Name:       "Acme",
				Position:   "Senior Backend Engineer",
				Summary:    "Owned the caching tier.",
				Highlights: []string{"Built distributed caching layer", "Reduced latency 40%"},
			},
		},
	}

	units := ExperienceUnits(resume)
	require.Len(t, units, 2)

	assert.Equal(t, SummarySource, units[0].Source)
	assert.Equal(t, "Backend engineer with 10 years of experience.", units[0].Text)

	assert.Equal(t, "Senior Backend Engineer at Acme", units[1].Source)
	assert.Equal(t,
		"Senior Backend Engineer at Acme. Owned the caching tier. Highlights: Built distributed caching layer Reduced latency 40%",
		units[1].Text)
}

func TestExperienceUnits_SkipsEmptyEntries(t *testing.T) {
	resume := &types.Resume{
		Work: []types.Work{
			{Name: "Ghost Corp"}, // No position, summary, or highlights.
			{Position: "Analyst", Name: "DataCo"},
		},
	}

	units := ExperienceUnits(resume)
	require.Len(t, units, 1)
	assert.Equal(t, "Analyst at DataCo", units[0].Source)
	assert.Equal(t, "Analyst at DataCo.", units[0].Text)
}

func TestExperienceUnits_NoContent(t *testing.T) {
	assert.Empty(t, ExperienceUnits(&types.Resume{}))
	assert.Empty(t, ExperienceUnits(nil))
}

func TestRequirementUnits_OrderAndSkills(t *testing.T) {
	job := &types.JobDescription{
		Responsibilities:       []string{"Design services", "Review code"},
		Qualifications:         []string{"BS or equivalent experience"},
		EducationRequirements:  []string{"Bachelor's degree in CS"},
		ExperienceRequirements: []string{"5+ years backend development"},
		Skills:                 "Go, PostgreSQL, Kubernetes",
	}

	units := RequirementUnits(job)
	require.Len(t, units, 6)
	assert.Equal(t, []string{
		"Design services",
		"Review code",
		"BS or equivalent experience",
		"Bachelor's degree in CS",
		"5+ years backend development",
		"Key skills include: Go, PostgreSQL, Kubernetes",
	}, units)
}

func TestRequirementUnits_NoSkillsString(t *testing.T) {
	job := &types.JobDescription{Responsibilities: []string{"Ship features"}}
	assert.Equal(t, []string{"Ship features"}, RequirementUnits(job))
}

func TestRequirementUnits_DuplicatesPreserved(t *testing.T) {
	job := &types.JobDescription{
		Responsibilities: []string{"Write Go"},
		Qualifications:   []string{"Write Go"},
	}
	assert.Equal(t, []string{"Write Go", "Write Go"}, RequirementUnits(job))
}
