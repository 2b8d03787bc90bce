// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the extracted resume profile.
func (p *Printer) PrintProfile(profile *types.ExtractedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tokens:   %d\n", profile.TokenCount))
	sb.WriteString(fmt.Sprintf("Skills:   %d distinct\n", profile.SkillCount()))

	if len(profile.Skills) > 0 {
		sb.WriteString("\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := profile.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (×%d)\n", skill, profile.Frequency[skill]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	sb.WriteString("\nSections:\n")
	for _, kind := range types.ExpectedSections {
		mark := "✗"
		if profile.Sections[kind] {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", mark, kind.Label()))
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRequirement outputs the weighted skill set extracted from a job posting.
func (p *Printer) PrintRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	if req.Empty() {
		p.printBox("JOB REQUIREMENT", "No recognizable skills in posting.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills: %d (total weight %d)\n\n", len(req.Skills), req.TotalWeight()))
	count := min(len(req.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		rs := req.Skills[i]
		sb.WriteString(fmt.Sprintf("  • %s (%s)\n", rs.Skill, rs.Weight))
	}
	if len(req.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.Skills)-maxItemsToShow))
	}

	p.printBox("JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the final analysis result bundle.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score:  %d/100\n", result.ATSScore))
	if result.MatchPercent != nil {
		sb.WriteString(fmt.Sprintf("Match:      %.1f%%\n", *result.MatchPercent))
	}
	if len(result.MissingKeywords) > 0 {
		missing := strings.Join(result.MissingKeywords, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:    %s\n", missing))
	}
	if result.Note != "" {
		sb.WriteString(fmt.Sprintf("Note:       %s\n", result.Note))
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for i, s := range result.Suggestions {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s))
		}
	}

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the ordered multi-job comparison.
func (p *Printer) PrintRanking(ranked []types.RankedMatch) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs compared: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		rm := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  job %d\n", i+1, rm.JobIndex+1))
		sb.WriteString(fmt.Sprintf("    Match: %.1f%%, missing %d\n", rm.MatchPercent, len(rm.MissingKeywords)))
	}
	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(ranked)-maxItemsToShow))
	}

	p.printBox("JOB RANKING", strings.TrimSuffix(sb.String(), "\n"))
}
