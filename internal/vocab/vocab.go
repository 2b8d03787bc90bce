// Package vocab provides the controlled skill vocabulary used by
// extraction: a canonical skill-name set plus an alias map, loaded once at
// startup and read-only afterwards. A Vocabulary is safe to share by
// reference across concurrent analyses.
package vocab

import (
	"fmt"
	"sort"
	"strings"
)

// Vocabulary is the immutable lookup structure for skill recognition.
// Keys are the lowercase normalized forms produced by the normalize
// package; values are the canonical display names.
type Vocabulary struct {
	canonical map[string]string // lowercase canonical form -> display name
	aliases   map[string]string // lowercase alias -> display name
}

// Entry is one canonical skill with its accepted aliases, as it appears in
// a vocabulary file.
type Entry struct {
	Name    string   `json:"name" validate:"required,min=1"`
	Aliases []string `json:"aliases,omitempty"`
}

// New builds a Vocabulary from entries. Aliases that collide with a
// different canonical skill are rejected; duplicate canonical names merge
// their alias lists.
func New(entries []Entry) (*Vocabulary, error) {
	v := &Vocabulary{
		canonical: make(map[string]string, len(entries)),
		aliases:   make(map[string]string),
	}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("vocabulary entry with empty name")
		}
		key := strings.ToLower(name)
		if existing, ok := v.canonical[key]; ok && existing != name {
			return nil, fmt.Errorf("canonical name %q conflicts with %q", name, existing)
		}
		v.canonical[key] = name

		for _, alias := range e.Aliases {
			aliasKey := strings.ToLower(strings.TrimSpace(alias))
			if aliasKey == "" {
				continue
			}
			if existing, ok := v.aliases[aliasKey]; ok && existing != name {
				return nil, fmt.Errorf("alias %q maps to both %q and %q", alias, existing, name)
			}
			v.aliases[aliasKey] = name
		}
	}
	return v, nil
}

// Resolve maps a normalized token or phrase to its canonical skill name.
// The alias map is consulted first, then the canonical set.
func (v *Vocabulary) Resolve(term string) (string, bool) {
	if v == nil {
		return "", false
	}
	if name, ok := v.aliases[term]; ok {
		return name, true
	}
	if name, ok := v.canonical[term]; ok {
		return name, true
	}
	return "", false
}

// Contains reports whether name is a canonical skill of this vocabulary.
func (v *Vocabulary) Contains(name string) bool {
	if v == nil {
		return false
	}
	_, ok := v.canonical[strings.ToLower(name)]
	return ok
}

// Size returns the number of canonical skills.
func (v *Vocabulary) Size() int {
	if v == nil {
		return 0
	}
	return len(v.canonical)
}

// CanonicalNames returns the sorted list of canonical skill names.
func (v *Vocabulary) CanonicalNames() []string {
	if v == nil {
		return nil
	}
	names := make([]string, 0, len(v.canonical))
	for _, name := range v.canonical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
