// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysisReport outputs a human-readable summary of the semantic
// analysis. Weakest matches come first, following the report's own order.
func (p *Printer) PrintAnalysisReport(report *types.AnalysisReport) {
	if report == nil {
		return
	}
	if report.Error != "" {
		p.printBox("SEMANTIC ANALYSIS", fmt.Sprintf("Error: %s", report.Error))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %s\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("Requirements analyzed: %d\n\n", len(report.MatchResults)))

	count := min(len(report.MatchResults), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := report.MatchResults[i]
		requirement := result.JobRequirement
		if len(requirement) > 50 {
			requirement = requirement[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", requirement))
		sb.WriteString(fmt.Sprintf("  %.2f via %s\n", result.ConfidenceScore, result.NearestExperience))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(report.MatchResults) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more requirements", len(report.MatchResults)-maxItemsToShow))
	}

	p.printBox("SEMANTIC ANALYSIS (weakest first)", sb.String())
}

// PrintSkillGap outputs the ranked skill coverage table.
func (p *Printer) PrintSkillGap(report *types.SkillGapReport) {
	if report == nil {
		return
	}
	if report.Error != "" {
		p.printBox("SKILL GAP", fmt.Sprintf("Error: %s", report.Error))
		return
	}
	if len(report.Matches) == 0 {
		p.printBox("SKILL GAP", "No skill gaps detected.")
		return
	}

	var sb strings.Builder
	for i, match := range report.Matches {
		marker := "✗"
		if match.Found {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s", marker, match.JobSkill))
		if match.ResumeSkill != "" && !strings.EqualFold(match.ResumeSkill, match.JobSkill) {
			sb.WriteString(fmt.Sprintf(" ~ %s", match.ResumeSkill))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %.2f  [%s]\n", match.Similarity, match.Priority))

		action := match.Action
		if len(action) > 50 {
			action = action[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", action))
		if i < len(report.Matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILL GAP", sb.String())
}

// PrintBlueprint outputs the coaching blueprint, slot by slot. Failed slots
// show their error in place of content.
func (p *Printer) PrintBlueprint(bp *types.Blueprint) {
	if bp == nil {
		return
	}

	var sb strings.Builder

	if bp.AssessmentError != "" {
		sb.WriteString(fmt.Sprintf("Assessment failed: %s\n", bp.AssessmentError))
	} else if bp.Assessment != nil {
		sb.WriteString(fmt.Sprintf("Alignment: %s\n", bp.Assessment.AlignmentScore))
		sb.WriteString(fmt.Sprintf("Fitness:   %s\n", bp.Assessment.OverallFitness))
		for _, opportunity := range bp.Assessment.KeyOpportunities {
			if len(opportunity) > 50 {
				opportunity = opportunity[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", opportunity))
		}
	}
	sb.WriteString("\n")

	if bp.SummaryError != "" {
		sb.WriteString(fmt.Sprintf("Summary rewrite failed: %s\n", bp.SummaryError))
	} else if bp.Summary != "" {
		sb.WriteString("Suggested summary:\n")
		summary := bp.Summary
		if len(summary) > 150 {
			summary = summary[:147] + "..."
		}
		for _, line := range strings.Split(summary, "\n") {
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
	}

	if bp.SkillTableError != "" {
		sb.WriteString(fmt.Sprintf("\nSkill table failed: %s\n", bp.SkillTableError))
	} else {
		sb.WriteString(fmt.Sprintf("\nSkill gaps flagged: %d\n", len(bp.SkillTable)))
	}
	sb.WriteString(fmt.Sprintf("Bullets rewritten:  %d", len(bp.Achievements)))

	p.printBox("TAILORING BLUEPRINT", sb.String())
}
