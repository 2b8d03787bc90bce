// Package match compares an extracted candidate profile against one or
// more weighted job requirements.
package match

import (
	"sort"

	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
)

// DegenerateRequirementNote is attached when a requirement carries no
// skills: the match is defined as zero rather than a division error.
const DegenerateRequirementNote = "job posting contains no recognizable skills; match percent is defined as 0"

// Compare computes the weighted match of a profile against one requirement.
// The match percent is the satisfied weight over the total requirement
// weight, scaled to 0-100. Missing keywords are the requirement skills the
// profile lacks, required before preferred, extraction order within the
// same weight, so the most impactful gaps surface first.
func Compare(profile *types.ExtractedProfile, req *types.JobRequirement) types.MatchResult {
	if req.Empty() {
		return types.MatchResult{MatchPercent: 0, Note: DegenerateRequirementNote}
	}

	satisfied := 0
	var missing []types.RequiredSkill
	for _, rs := range req.Skills {
		if profile.HasSkill(rs.Skill) {
			satisfied += int(rs.Weight)
		} else {
			missing = append(missing, rs)
		}
	}

	// Stable sort keeps extraction order within equal weights.
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Weight > missing[j].Weight
	})
	keywords := make([]string, len(missing))
	for i, rs := range missing {
		keywords[i] = rs.Skill
	}

	return types.MatchResult{
		MatchPercent:    100 * float64(satisfied) / float64(req.TotalWeight()),
		MissingKeywords: keywords,
	}
}
