package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
)

func capture(fn func(p *Printer)) string {
	var buf bytes.Buffer
	fn(NewPrinter(&buf))
	return buf.String()
}

func TestPrintProfile(t *testing.T) {
	profile := &types.ExtractedProfile{
		Skills:     []string{"Go", "SQL"},
		Frequency:  map[string]int{"Go": 3, "SQL": 1},
		Sections:   map[types.SectionKind]bool{types.SectionSkills: true},
		TokenCount: 200,
	}

	out := capture(func(p *Printer) { p.PrintProfile(profile) })

	assert.Contains(t, out, "EXTRACTED PROFILE")
	assert.Contains(t, out, "Tokens:   200")
	assert.Contains(t, out, "Skills:   2 distinct")
	assert.Contains(t, out, "Go (×3)")
	assert.Contains(t, out, "✓ Skills")
	assert.Contains(t, out, "✗ Contact")
}

func TestPrintProfile_TruncatesLongSkillLists(t *testing.T) {
	skills := []string{"Go", "SQL", "Docker", "Redis", "Kafka", "Rust", "Scala"}
	freq := make(map[string]int)
	for _, s := range skills {
		freq[s] = 1
	}
	profile := &types.ExtractedProfile{Skills: skills, Frequency: freq}

	out := capture(func(p *Printer) { p.PrintProfile(profile) })

	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "Scala")
}

func TestPrintProfile_Nil(t *testing.T) {
	assert.Empty(t, capture(func(p *Printer) { p.PrintProfile(nil) }))
}

func TestPrintRequirement(t *testing.T) {
	req := &types.JobRequirement{Skills: []types.RequiredSkill{
		{Skill: "Go", Weight: types.WeightRequired},
		{Skill: "Kafka", Weight: types.WeightPreferred},
	}}

	out := capture(func(p *Printer) { p.PrintRequirement(req) })

	assert.Contains(t, out, "JOB REQUIREMENT")
	assert.Contains(t, out, "Skills: 2 (total weight 3)")
	assert.Contains(t, out, "Go (required)")
	assert.Contains(t, out, "Kafka (preferred)")
}

func TestPrintRequirement_Empty(t *testing.T) {
	out := capture(func(p *Printer) { p.PrintRequirement(&types.JobRequirement{}) })

	assert.Contains(t, out, "No recognizable skills")
}

func TestPrintAnalysis(t *testing.T) {
	percent := 66.67
	result := &types.AnalysisResult{
		ATSScore:        68,
		MatchPercent:    &percent,
		MissingKeywords: []string{"SQL"},
		Suggestions:     []string{"Add a Projects section."},
	}

	out := capture(func(p *Printer) { p.PrintAnalysis(result) })

	assert.Contains(t, out, "ANALYSIS RESULT")
	assert.Contains(t, out, "ATS Score:  68/100")
	assert.Contains(t, out, "Match:      66.7%")
	assert.Contains(t, out, "Missing:    SQL")
	assert.Contains(t, out, "1. Add a Projects section.")
}

func TestPrintAnalysis_NoMatchSection(t *testing.T) {
	out := capture(func(p *Printer) { p.PrintAnalysis(&types.AnalysisResult{ATSScore: 40}) })

	assert.Contains(t, out, "ATS Score:  40/100")
	assert.NotContains(t, out, "Match:")
}

func TestPrintRanking(t *testing.T) {
	ranked := []types.RankedMatch{
		{JobIndex: 1, MatchResult: types.MatchResult{MatchPercent: 80}},
		{JobIndex: 0, MatchResult: types.MatchResult{MatchPercent: 40, MissingKeywords: []string{"Go", "SQL"}}},
	}

	out := capture(func(p *Printer) { p.PrintRanking(ranked) })

	assert.Contains(t, out, "JOB RANKING")
	assert.Contains(t, out, "Jobs compared: 2")
	assert.Contains(t, out, "#1  job 2")
	assert.Contains(t, out, "Match: 80.0%, missing 0")
	assert.Contains(t, out, "#2  job 1")
	assert.Contains(t, out, "Match: 40.0%, missing 2")
}

func TestPrintRanking_Empty(t *testing.T) {
	assert.Empty(t, capture(func(p *Printer) { p.PrintRanking(nil) }))
}

func TestPrintBox_Borders(t *testing.T) {
	out := capture(func(p *Printer) { p.printBox("TITLE", "body") })

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└"))
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "body")
}
