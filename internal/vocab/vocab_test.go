package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ResolvesCanonicalAndAliases(t *testing.T) {
	v, err := New([]Entry{
		{Name: "JavaScript", Aliases: []string{"js"}},
		{Name: "Machine Learning", Aliases: []string{"ml"}},
	})
	require.NoError(t, err)

	name, ok := v.Resolve("javascript")
	require.True(t, ok)
	assert.Equal(t, "JavaScript", name)

	name, ok = v.Resolve("js")
	require.True(t, ok)
	assert.Equal(t, "JavaScript", name)

	name, ok = v.Resolve("machine learning")
	require.True(t, ok)
	assert.Equal(t, "Machine Learning", name)

	_, ok = v.Resolve("cobol")
	assert.False(t, ok)
}

func TestNew_AliasLookupWinsOverCanonical(t *testing.T) {
	// "go" is an alias of Golang here and not a canonical name; the alias
	// map is consulted first by contract.
	v, err := New([]Entry{
		{Name: "Golang", Aliases: []string{"go"}},
	})
	require.NoError(t, err)

	name, ok := v.Resolve("go")
	require.True(t, ok)
	assert.Equal(t, "Golang", name)
}

func TestNew_RejectsConflictingAlias(t *testing.T) {
	_, err := New([]Entry{
		{Name: "JavaScript", Aliases: []string{"js"}},
		{Name: "Java", Aliases: []string{"js"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "js")
}

func TestNew_RejectsEmptyName(t *testing.T) {
	_, err := New([]Entry{{Name: "   "}})
	assert.Error(t, err)
}

func TestNew_MergesDuplicateCanonicalNames(t *testing.T) {
	v, err := New([]Entry{
		{Name: "Docker", Aliases: []string{"docker engine"}},
		{Name: "Docker", Aliases: []string{"docker ce"}},
	})
	require.NoError(t, err)

	name, ok := v.Resolve("docker engine")
	require.True(t, ok)
	assert.Equal(t, "Docker", name)

	name, ok = v.Resolve("docker ce")
	require.True(t, ok)
	assert.Equal(t, "Docker", name)
	assert.Equal(t, 1, v.Size())
}

func TestVocabulary_Contains(t *testing.T) {
	v, err := New([]Entry{{Name: "Python"}})
	require.NoError(t, err)

	assert.True(t, v.Contains("Python"))
	assert.True(t, v.Contains("python"))
	assert.False(t, v.Contains("Ruby"))
}

func TestVocabulary_CanonicalNamesSorted(t *testing.T) {
	v, err := New([]Entry{{Name: "Redis"}, {Name: "AWS"}, {Name: "Go"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"AWS", "Go", "Redis"}, v.CanonicalNames())
}

func TestBuiltin_IsValidAndNonTrivial(t *testing.T) {
	v := Builtin()
	assert.Greater(t, v.Size(), 50)

	// Spot-check a few aliases the portal's resumes commonly use.
	for alias, want := range map[string]string{
		"js":      "JavaScript",
		"k8s":     "Kubernetes",
		"golang":  "Go",
		"postgres": "PostgreSQL",
		"nodejs":  "Node.js",
		"ml":      "Machine Learning",
	} {
		name, ok := v.Resolve(alias)
		require.True(t, ok, "alias %q should resolve", alias)
		assert.Equal(t, want, name)
	}
}

func TestNilVocabulary_SafeAccessors(t *testing.T) {
	var v *Vocabulary
	_, ok := v.Resolve("go")
	assert.False(t, ok)
	assert.False(t, v.Contains("go"))
	assert.Equal(t, 0, v.Size())
	assert.Nil(t, v.CanonicalNames())
}
