// Package normalize turns raw document text into the token stream consumed
// by skill extraction and scoring.
package normalize

import (
	"strings"
	"unicode"

	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
)

// Phrase n-gram sizes emitted alongside unigrams. Many skills are
// multi-word ("machine learning", "data structures and algorithms" is out
// of reach, but 2-3 grams cover the controlled vocabulary).
const (
	minPhraseLen = 2
	maxPhraseLen = 3
)

// Normalize case-folds raw text, splits it into unigram tokens, and emits
// sliding 2- and 3-gram phrases. Technical suffix characters '+', '#', and
// '.' are kept inside tokens so names like "c++", "c#", and "node.js"
// survive tokenization; trailing dots are stripped so sentence-final words
// stay clean. Empty or blank input yields an empty stream, not an error.
//
// Callers are expected to cap input upstream; around 200 KB is a practical
// ceiling beyond which truncation is advisable.
func Normalize(rawText string) *types.TokenStream {
	tokens := Tokenize(rawText)
	return &types.TokenStream{
		Tokens:  tokens,
		Phrases: phrases(tokens),
	}
}

// Tokenize splits text into lowercase tokens, preserving '+', '#', and '.'
// inside tokens and dropping trailing dots.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// phrases builds the sliding 2..3-gram phrase list from unigram tokens,
// in document order, 2-grams before 3-grams for each window start.
func phrases(tokens []string) []types.Phrase {
	var out []types.Phrase
	for i := range tokens {
		for n := minPhraseLen; n <= maxPhraseLen; n++ {
			if i+n > len(tokens) {
				break
			}
			out = append(out, types.Phrase{
				Text:  strings.Join(tokens[i:i+n], " "),
				Start: i,
				Len:   n,
			})
		}
	}
	return out
}

// Sentences splits text on sentence-ending punctuation and line breaks.
// Resume and posting bullet lists rarely use full punctuation, so a line
// break also terminates a sentence. A period only ends a sentence when
// followed by whitespace, which keeps dotted names like "Node.js" intact.
// Empty segments are dropped.
func Sentences(text string) []string {
	var sentences []string
	var current strings.Builder
	flush := func() {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	runes := []rune(text)
	for i, r := range runes {
		switch r {
		case '!', '?', ';', '\n':
			flush()
		case '.':
			if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) {
				flush()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return sentences
}
