// Package types defines the shared value types exchanged between the
// analysis engine's stages.
package types

// SectionKind identifies a recognized resume section.
type SectionKind string

const (
	SectionContact    SectionKind = "contact"
	SectionSummary    SectionKind = "summary"
	SectionEducation  SectionKind = "education"
	SectionExperience SectionKind = "experience"
	SectionSkills     SectionKind = "skills"
	SectionProjects   SectionKind = "projects"
	SectionOther      SectionKind = "other"
)

// ExpectedSections are the five section kinds an ATS-friendly resume is
// expected to carry. Order matters: suggestions for missing sections are
// emitted in this order.
var ExpectedSections = []SectionKind{
	SectionContact,
	SectionEducation,
	SectionExperience,
	SectionSkills,
	SectionProjects,
}

// Label returns the human-readable section name used in suggestions.
func (k SectionKind) Label() string {
	switch k {
	case SectionContact:
		return "Contact"
	case SectionSummary:
		return "Summary"
	case SectionEducation:
		return "Education"
	case SectionExperience:
		return "Experience"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	default:
		return "Other"
	}
}

// Span marks a half-open line range [Start, End) inside a Document's text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Document is an immutable ingested text plus its detected sections.
// Downstream stages derive new values from it and never mutate it.
type Document struct {
	Text     string               `json:"text"`
	Sections map[SectionKind]Span `json:"sections,omitempty"`
}

// Phrase is a contiguous n-gram of the token stream, carrying its position
// so extraction can prefer longer matches over overlapping shorter ones.
type Phrase struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	Len   int    `json:"len"`
}

// TokenStream is the ordered output of text normalization: unigrams in
// document order plus the 2- and 3-gram phrases derived from them.
// It is owned by the pipeline invocation that created it.
type TokenStream struct {
	Tokens  []string `json:"tokens"`
	Phrases []Phrase `json:"phrases"`
}

// Len returns the number of unigram tokens in the stream.
func (ts *TokenStream) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.Tokens)
}

// Empty reports whether the stream carries no tokens.
func (ts *TokenStream) Empty() bool {
	return ts.Len() == 0
}

// ExtractedProfile is the set of canonical skills recognized in a Document,
// with per-skill occurrence counts and the set of detected section kinds.
type ExtractedProfile struct {
	// Skills lists canonical skill names in first-occurrence order.
	Skills []string `json:"skills"`
	// Frequency maps canonical skill name to occurrence count.
	Frequency map[string]int `json:"frequency"`
	// Sections holds the section kinds detected in the source document.
	Sections map[SectionKind]bool `json:"sections"`
	// TokenCount is the unigram count of the normalized source text,
	// carried for length-based scoring.
	TokenCount int `json:"token_count"`
}

// HasSkill reports whether the profile contains the canonical skill name.
func (p *ExtractedProfile) HasSkill(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p.Frequency[name]
	return ok
}

// SkillCount returns the number of distinct canonical skills found.
func (p *ExtractedProfile) SkillCount() int {
	if p == nil {
		return 0
	}
	return len(p.Skills)
}

// Weight is the requirement priority attached to a skill extracted from a
// job posting.
type Weight int

const (
	// WeightPreferred marks nice-to-have skills (and is the default when a
	// posting gives no marker).
	WeightPreferred Weight = 1
	// WeightRequired marks must-have skills. Required wins when a skill
	// appears with both markers.
	WeightRequired Weight = 2
)

// String returns the lowercase label used in serialized output.
func (w Weight) String() string {
	if w == WeightRequired {
		return "required"
	}
	return "preferred"
}

// RequiredSkill is one {skill, weight} pair of a JobRequirement.
type RequiredSkill struct {
	Skill  string `json:"skill"`
	Weight Weight `json:"weight"`
}

// JobRequirement is the weighted skill set extracted from one job posting.
// Immutable after extraction; Skills preserves extraction order.
type JobRequirement struct {
	Skills []RequiredSkill `json:"skills"`
}

// TotalWeight sums the weights of all requirement skills.
func (r *JobRequirement) TotalWeight() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, s := range r.Skills {
		total += int(s.Weight)
	}
	return total
}

// Empty reports whether the requirement carries no skills.
func (r *JobRequirement) Empty() bool {
	return r == nil || len(r.Skills) == 0
}

// MatchResult is the outcome of comparing one profile against one
// JobRequirement.
type MatchResult struct {
	// MatchPercent is the weighted satisfied fraction, 0-100.
	MatchPercent float64 `json:"match_percent"`
	// MissingKeywords lists requirement skills absent from the profile,
	// Required before Preferred, extraction order within equal weight.
	MissingKeywords []string `json:"missing_keywords"`
	// Note carries a diagnostic for degenerate requirements (zero skills);
	// empty otherwise.
	Note string `json:"note,omitempty"`
}

// RankedMatch pairs a MatchResult with the index of the job it was computed
// against, for multi-job ranking output.
type RankedMatch struct {
	// JobIndex is the position of the job in the caller's input order.
	JobIndex int `json:"job_index"`
	MatchResult
}

// AnalysisResult is the engine's output bundle: a flat record suitable for
// direct JSON transport. MatchPercent and MissingKeywords are populated only
// when a job posting was supplied; MatchPercent is a pointer so a genuine
// 0% match still serializes.
type AnalysisResult struct {
	ATSScore        int      `json:"ats_score"`
	MatchPercent    *float64 `json:"match_percent,omitempty"`
	MissingKeywords []string `json:"missing_keywords,omitempty"`
	Suggestions     []string `json:"suggestions"`
	Note            string   `json:"note,omitempty"`
}
