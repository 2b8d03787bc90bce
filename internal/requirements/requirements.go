// Package requirements extracts the weighted skill set a job posting asks
// for, distinguishing required from preferred mentions by marker words in
// the surrounding sentence.
package requirements

import (
	"strings"

	"github.com/Dharaneesh-S-S/resume-engine/internal/extract"
	"github.com/Dharaneesh-S-S/resume-engine/internal/normalize"
	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
	"github.com/Dharaneesh-S-S/resume-engine/internal/vocab"
)

// requiredMarkers flag a sentence as naming hard requirements.
// Markers are matched against normalized tokens, so hyphenated spellings
// like "must-have" arrive as "must have".
var requiredMarkers = []string{
	"required", "require", "requirement", "requirements",
	"must have", "minimum", "mandatory", "essential",
}

// preferredMarkers flag a sentence as naming nice-to-haves. A skill with no
// marker in its sentence defaults to preferred as well.
var preferredMarkers = []string{
	"preferred", "preferably", "nice to have",
	"bonus", "a plus", "desirable", "optional",
}

// Extract runs skill extraction sentence by sentence over a job posting
// and assigns each mention a weight from its sentence's marker words.
// When the same skill appears under both markers, required wins. Skills
// keep their first-mention order; a posting with no recognizable skills
// yields an empty (degenerate) requirement, which the match engine handles
// as a defined-zero result rather than an error.
func Extract(jobText string, v *vocab.Vocabulary) *types.JobRequirement {
	req := &types.JobRequirement{}
	weights := make(map[string]types.Weight)

	for _, sentence := range normalize.Sentences(jobText) {
		stream := normalize.Normalize(sentence)
		profile := extract.Profile(stream, v, nil)
		if profile.SkillCount() == 0 {
			continue
		}
		weight := sentenceWeight(stream.Tokens)
		for _, skill := range profile.Skills {
			existing, seen := weights[skill]
			if !seen {
				weights[skill] = weight
				req.Skills = append(req.Skills, types.RequiredSkill{Skill: skill, Weight: weight})
				continue
			}
			if weight > existing {
				weights[skill] = weight
				for i := range req.Skills {
					if req.Skills[i].Skill == skill {
						req.Skills[i].Weight = weight
						break
					}
				}
			}
		}
	}
	return req
}

// sentenceWeight classifies a sentence's requirement level from its
// normalized tokens. Required markers dominate preferred ones when both
// appear; no marker means preferred.
func sentenceWeight(tokens []string) types.Weight {
	joined := " " + strings.Join(tokens, " ") + " "
	for _, marker := range requiredMarkers {
		if strings.Contains(joined, " "+marker+" ") {
			return types.WeightRequired
		}
	}
	for _, marker := range preferredMarkers {
		if strings.Contains(joined, " "+marker+" ") {
			return types.WeightPreferred
		}
	}
	return types.WeightPreferred
}
