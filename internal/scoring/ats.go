// Package scoring computes the heuristic ATS score for an extracted resume
// profile: structural completeness, skill breadth, and length sanity.
package scoring

import (
	"math"

	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
)

// Config carries the scoring model's constants. The model is a documented
// design choice rather than a reverse-engineered fact, so the constants are
// parameters with DefaultConfig values instead of hard-coded facts.
type Config struct {
	// PointsPerSection is awarded for each expected section present.
	PointsPerSection int `json:"points_per_section"`
	// PointsPerSkill is awarded per distinct canonical skill, up to SkillMax.
	// Repeat mentions of a skill add nothing, which keeps keyword stuffing
	// from inflating the score.
	PointsPerSkill int `json:"points_per_skill"`
	// SkillMax caps the skill-breadth component.
	SkillMax int `json:"skill_max"`
	// LengthMax is the full-credit value of the length component.
	LengthMax int `json:"length_max"`
	// IdealMinTokens..IdealMaxTokens is the full-credit token band.
	IdealMinTokens int `json:"ideal_min_tokens"`
	IdealMaxTokens int `json:"ideal_max_tokens"`
	// HardMinTokens..HardMaxTokens is the wider band outside which the
	// length component is zero; credit scales linearly between the bands.
	HardMinTokens int `json:"hard_min_tokens"`
	HardMaxTokens int `json:"hard_max_tokens"`
}

// DefaultConfig returns the standard scoring constants: 40 structural
// points (8 per section across 5 expected sections), 40 skill points
// (4 per skill, full credit at 10 skills), and 20 length points for a
// resume of 150-1200 tokens.
func DefaultConfig() Config {
	return Config{
		PointsPerSection: 8,
		PointsPerSkill:   4,
		SkillMax:         40,
		LengthMax:        20,
		IdealMinTokens:   150,
		IdealMaxTokens:   1200,
		HardMinTokens:    50,
		HardMaxTokens:    2000,
	}
}

// Score computes the 0-100 ATS score for a profile using the default
// configuration.
func Score(profile *types.ExtractedProfile) int {
	return DefaultConfig().Score(profile)
}

// Score computes the 0-100 ATS score for a profile: structural points for
// detected expected sections, skill points for distinct skills, and length
// points for the normalized token count, summed and clamped.
func (c Config) Score(profile *types.ExtractedProfile) int {
	score := c.structuralPoints(profile) + c.skillPoints(profile) + c.lengthPoints(profile.TokenCount)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func (c Config) structuralPoints(profile *types.ExtractedProfile) int {
	points := 0
	for _, kind := range types.ExpectedSections {
		if profile.Sections[kind] {
			points += c.PointsPerSection
		}
	}
	return points
}

func (c Config) skillPoints(profile *types.ExtractedProfile) int {
	points := profile.SkillCount() * c.PointsPerSkill
	if points > c.SkillMax {
		return c.SkillMax
	}
	return points
}

// lengthPoints gives full credit inside the ideal band, zero outside the
// hard band, and linear credit in between.
func (c Config) lengthPoints(tokenCount int) int {
	switch {
	case tokenCount >= c.IdealMinTokens && tokenCount <= c.IdealMaxTokens:
		return c.LengthMax
	case tokenCount < c.HardMinTokens || tokenCount > c.HardMaxTokens:
		return 0
	case tokenCount < c.IdealMinTokens:
		frac := float64(tokenCount-c.HardMinTokens) / float64(c.IdealMinTokens-c.HardMinTokens)
		return int(math.Round(frac * float64(c.LengthMax)))
	default:
		frac := float64(c.HardMaxTokens-tokenCount) / float64(c.HardMaxTokens-c.IdealMaxTokens)
		return int(math.Round(frac * float64(c.LengthMax)))
	}
}
