// Package extract recognizes canonical skills in normalized token streams
// and detects resume sections from document headings.
package extract

import (
	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
	"github.com/Dharaneesh-S-S/resume-engine/internal/vocab"
)

// Profile extracts the canonical skills present in a token stream, applying
// longest-match preference: a 3-gram hit consumes its token span so an
// overlapping 2-gram or unigram cannot double-count the same text, while
// non-overlapping shorter matches still count. Section detection runs
// separately over the raw document text (see DetectSections); callers pass
// its result so the profile carries both signals.
//
// The result is deterministic for a given stream and vocabulary, and its
// skill set is always a subset of the vocabulary's canonical names.
func Profile(stream *types.TokenStream, v *vocab.Vocabulary, sections map[types.SectionKind]bool) *types.ExtractedProfile {
	profile := &types.ExtractedProfile{
		Frequency:  make(map[string]int),
		Sections:   sections,
		TokenCount: stream.Len(),
	}
	if profile.Sections == nil {
		profile.Sections = make(map[types.SectionKind]bool)
	}
	if stream.Empty() {
		return profile
	}

	consumed := make([]bool, len(stream.Tokens))

	// Longest phrases first so "machine learning engineer" is not also
	// counted as "machine learning" plus a spurious overlap. Within one
	// length class, document order.
	for n := 3; n >= 2; n-- {
		for _, ph := range stream.Phrases {
			if ph.Len != n || spanConsumed(consumed, ph.Start, ph.Len) {
				continue
			}
			if name, ok := v.Resolve(ph.Text); ok {
				record(profile, name)
				consumeSpan(consumed, ph.Start, ph.Len)
			}
		}
	}
	for i, tok := range stream.Tokens {
		if consumed[i] {
			continue
		}
		if name, ok := v.Resolve(tok); ok {
			record(profile, name)
			consumed[i] = true
		}
	}
	return profile
}

func spanConsumed(consumed []bool, start, n int) bool {
	for j := start; j < start+n; j++ {
		if consumed[j] {
			return true
		}
	}
	return false
}

func consumeSpan(consumed []bool, start, n int) {
	for j := start; j < start+n; j++ {
		consumed[j] = true
	}
}

// record increments a canonical skill's frequency, appending it to the
// ordered skill list on first sight.
func record(profile *types.ExtractedProfile, name string) {
	if _, seen := profile.Frequency[name]; !seen {
		profile.Skills = append(profile.Skills, name)
	}
	profile.Frequency[name]++
}
