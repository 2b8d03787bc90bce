package extract

import (
	"regexp"
	"strings"

	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
)

// sectionHeadings maps each section kind to the heading keywords that
// identify it. Matching is case-insensitive against line-level boundaries
// of the original document, independent of token matching.
var sectionHeadings = map[types.SectionKind][]string{
	types.SectionContact:    {"contact", "contact information", "personal details", "personal information"},
	types.SectionSummary:    {"summary", "professional summary", "objective", "about me", "profile"},
	types.SectionEducation:  {"education", "academic background", "qualifications", "academics"},
	types.SectionExperience: {"experience", "work experience", "employment", "employment history", "work history", "professional experience", "internships"},
	types.SectionSkills:     {"skills", "technical skills", "technologies", "core competencies", "tech stack"},
	types.SectionProjects:   {"projects", "personal projects", "academic projects", "portfolio"},
}

// headingOrder fixes the detection precedence when a heading line could
// match more than one kind (more specific keyword lists win via longest
// keyword, this order breaks remaining ties deterministically).
var headingOrder = []types.SectionKind{
	types.SectionContact,
	types.SectionSummary,
	types.SectionEducation,
	types.SectionExperience,
	types.SectionSkills,
	types.SectionProjects,
}

// maxHeadingRunes bounds how long a line may be to count as a heading.
// Real section headings are short; prose lines that merely mention
// "experience" should not open a section.
const maxHeadingRunes = 48

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d[\d\s\-()]{7,}\d)`)
)

// BuildDocument wraps raw text in an immutable Document with its detected
// section spans.
func BuildDocument(rawText string) *types.Document {
	return &types.Document{
		Text:     rawText,
		Sections: DetectSections(rawText),
	}
}

// DetectSections scans document lines for section headings and returns the
// detected spans. Spans are half-open line ranges: a section starts at its
// heading line and runs until the next recognized heading or end of text.
//
// The contact section is additionally inferred from an email address or
// phone number in the first lines of the document, since resumes usually
// open with contact details rather than a "Contact" heading.
func DetectSections(rawText string) map[types.SectionKind]types.Span {
	sections := make(map[types.SectionKind]types.Span)
	if strings.TrimSpace(rawText) == "" {
		return sections
	}
	lines := strings.Split(rawText, "\n")

	type heading struct {
		kind types.SectionKind
		line int
	}
	var headings []heading
	for i, line := range lines {
		if kind, ok := classifyHeading(line); ok {
			headings = append(headings, heading{kind: kind, line: i})
		}
	}

	for idx, h := range headings {
		end := len(lines)
		if idx+1 < len(headings) {
			end = headings[idx+1].line
		}
		// First heading of a kind wins; later duplicates are ignored.
		if _, seen := sections[h.kind]; !seen {
			sections[h.kind] = types.Span{Start: h.line, End: end}
		}
	}

	// Contact details commonly appear as a header block, not under a
	// heading. An email or phone number in the top lines counts.
	if _, ok := sections[types.SectionContact]; !ok {
		if span, found := contactBlock(lines); found {
			sections[types.SectionContact] = span
		}
	}
	return sections
}

// SectionKinds reduces detected spans to the presence set carried on an
// ExtractedProfile.
func SectionKinds(spans map[types.SectionKind]types.Span) map[types.SectionKind]bool {
	kinds := make(map[types.SectionKind]bool, len(spans))
	for kind := range spans {
		kinds[kind] = true
	}
	return kinds
}

// classifyHeading decides whether a line is a section heading and of which
// kind. Longer keyword matches win; headingOrder breaks ties.
func classifyHeading(line string) (types.SectionKind, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len([]rune(trimmed)) > maxHeadingRunes {
		return "", false
	}
	// Strip common heading decoration before comparing.
	cleaned := strings.ToLower(strings.Trim(trimmed, " \t:#*-_=·•"))
	if cleaned == "" {
		return "", false
	}

	bestLen := 0
	var bestKind types.SectionKind
	for _, kind := range headingOrder {
		for _, keyword := range sectionHeadings[kind] {
			if !matchesHeading(cleaned, keyword) {
				continue
			}
			if len(keyword) > bestLen {
				bestLen = len(keyword)
				bestKind = kind
			}
		}
	}
	if bestLen == 0 {
		return "", false
	}
	return bestKind, true
}

// matchesHeading reports whether a cleaned heading line equals the keyword
// or starts with it at a word boundary ("skills & tools" matches "skills").
func matchesHeading(cleaned, keyword string) bool {
	if cleaned == keyword {
		return true
	}
	if strings.HasPrefix(cleaned, keyword) {
		rest := cleaned[len(keyword):]
		return strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, ":")
	}
	return false
}

// contactBlock looks for an email address or phone number within the first
// lines of the document and returns a span covering the matching line.
func contactBlock(lines []string) (types.Span, bool) {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		if emailPattern.MatchString(lines[i]) || phonePattern.MatchString(lines[i]) {
			return types.Span{Start: i, End: i + 1}, true
		}
	}
	return types.Span{}, false
}
