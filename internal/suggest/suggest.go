// Package suggest derives actionable improvement suggestions from scoring
// and matching gaps. Rule-based and deterministic.
package suggest

import (
	"fmt"
	"strings"

	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
)

const (
	// maxSuggestions caps the output so callers are not overwhelmed.
	maxSuggestions = 5
	// maxSectionSuggestions bounds the missing-section rule so lower
	// priority rules (length, skill sparsity) still surface for a resume
	// missing every section.
	maxSectionSuggestions = 3
	// topMissingSkills bounds how many missing keywords one suggestion names.
	topMissingSkills = 3
	// shortTokenCount and longTokenCount mirror the scorer's length bands.
	shortTokenCount = 150
	longTokenCount  = 2000
	// minSkillCount below which the profile looks skill-sparse.
	minSkillCount = 5
)

// Build produces up to five suggestions in fixed priority order: missing
// sections first, then missing job keywords, then length problems, then
// skill sparsity. Only applicable rules fire; collection stops at the cap.
// matchResult is nil when no job posting was supplied.
func Build(profile *types.ExtractedProfile, matchResult *types.MatchResult) []string {
	var suggestions []string
	add := func(s string) bool {
		if len(suggestions) >= maxSuggestions {
			return false
		}
		suggestions = append(suggestions, s)
		return len(suggestions) < maxSuggestions
	}

	sectionSuggestions := 0
	for _, kind := range types.ExpectedSections {
		if profile.Sections[kind] || sectionSuggestions >= maxSectionSuggestions {
			continue
		}
		sectionSuggestions++
		if !add(fmt.Sprintf("Add a %s section.", kind.Label())) {
			return suggestions
		}
	}

	if matchResult != nil && len(matchResult.MissingKeywords) > 0 {
		top := matchResult.MissingKeywords
		if len(top) > topMissingSkills {
			top = top[:topMissingSkills]
		}
		if !add(fmt.Sprintf("Add experience/keywords for: %s.", strings.Join(top, ", "))) {
			return suggestions
		}
	}

	if profile.TokenCount < shortTokenCount {
		if !add("Resume appears too short; add more detail.") {
			return suggestions
		}
	}
	if profile.TokenCount > longTokenCount {
		if !add("Resume appears too long; consider trimming.") {
			return suggestions
		}
	}

	if profile.SkillCount() < minSkillCount {
		add("List more relevant skills explicitly.")
	}
	return suggestions
}
