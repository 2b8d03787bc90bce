package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dharaneesh-S-S/resume-engine/internal/match"
	"github.com/Dharaneesh-S-S/resume-engine/internal/vocab"
)

const sampleResume = `Jane Doe
jane.doe@example.com | 555-123-4567

Skills
Go, Python, SQL, Docker, Kubernetes, PostgreSQL

Experience
Senior Engineer at Acme. Built Go services backed by PostgreSQL and
deployed them with Docker and Kubernetes. Wrote SQL migrations and
Python tooling for the data team.

Education
B.S. Computer Science, State University

Projects
Open source contributor to several Go libraries.
`

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{Vocabulary: vocab.Builtin()}
}

func TestAnalyze_ResumeOnly(t *testing.T) {
	result, err := Analyze(testOptions(t), sampleResume, "")
	require.NoError(t, err)

	assert.Greater(t, result.ATSScore, 0)
	assert.LessOrEqual(t, result.ATSScore, 100)
	assert.Nil(t, result.MatchPercent)
	assert.Empty(t, result.MissingKeywords)
	assert.Empty(t, result.Note)
}

func TestAnalyze_WithJob(t *testing.T) {
	job := `We are hiring a backend engineer.
Required: Go, SQL, and Docker experience.
Preferred: familiarity with Kafka.`

	result, err := Analyze(testOptions(t), sampleResume, job)
	require.NoError(t, err)

	require.NotNil(t, result.MatchPercent)
	// Go, SQL, Docker satisfied (weight 6); Kafka missing (weight 1).
	assert.InDelta(t, 100*6.0/7.0, *result.MatchPercent, 0.01)
	assert.Equal(t, []string{"Kafka"}, result.MissingKeywords)
}

func TestAnalyze_EmptyResume(t *testing.T) {
	result, err := Analyze(testOptions(t), "", "")
	require.NoError(t, err)

	assert.Equal(t, 0, result.ATSScore)
	assert.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions, "Add a Contact section.")
	assert.Contains(t, result.Suggestions, "Resume appears too short; add more detail.")
	assert.LessOrEqual(t, len(result.Suggestions), 5)
}

func TestAnalyze_ZeroPercentMatchIsReported(t *testing.T) {
	job := "Required: Rust and Scala."

	result, err := Analyze(testOptions(t), sampleResume, job)
	require.NoError(t, err)

	require.NotNil(t, result.MatchPercent)
	assert.Zero(t, *result.MatchPercent)
	assert.ElementsMatch(t, []string{"Rust", "Scala"}, result.MissingKeywords)
}

func TestAnalyze_DegenerateJobText(t *testing.T) {
	result, err := Analyze(testOptions(t), sampleResume, "We value punctuality and a positive attitude above all.")
	require.NoError(t, err)

	require.NotNil(t, result.MatchPercent)
	assert.Zero(t, *result.MatchPercent)
	assert.Equal(t, match.DegenerateRequirementNote, result.Note)
}

func TestAnalyze_Deterministic(t *testing.T) {
	job := "Required: Go and SQL. Preferred: Docker."

	first, err := Analyze(testOptions(t), sampleResume, job)
	require.NoError(t, err)
	second, err := Analyze(testOptions(t), sampleResume, job)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_ScoreMonotoneInContent(t *testing.T) {
	// Adding a relevant skill to an unsaturated resume never lowers the score.
	base := "Skills\nGo, SQL"
	richer := base + ", Docker"

	opts := testOptions(t)
	lo, err := Analyze(opts, base, "")
	require.NoError(t, err)
	hi, err := Analyze(opts, richer, "")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, hi.ATSScore, lo.ATSScore)
}

func TestAnalyze_NilVocabulary(t *testing.T) {
	_, err := Analyze(Options{}, sampleResume, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vocabulary")
}

func TestRankJobs_OrdersBestFirst(t *testing.T) {
	jobs := []string{
		"Required: Rust and Scala.",
		"Required: Go, SQL, and Docker.",
		"Required: Go and Kafka.",
	}

	ranked, err := RankJobs(context.Background(), testOptions(t), sampleResume, jobs)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, 1, ranked[0].JobIndex)
	assert.InDelta(t, 100.0, ranked[0].MatchPercent, 0.01)
	assert.Equal(t, 2, ranked[1].JobIndex)
	assert.Equal(t, 0, ranked[2].JobIndex)
	assert.Zero(t, ranked[2].MatchPercent)
}

func TestRankJobs_NilVocabulary(t *testing.T) {
	_, err := RankJobs(context.Background(), Options{}, sampleResume, []string{"Required: Go."})
	require.Error(t, err)
}

func TestRankJobs_Empty(t *testing.T) {
	ranked, err := RankJobs(context.Background(), testOptions(t), sampleResume, nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestAnalyze_WhitespaceOnlyResume(t *testing.T) {
	result, err := Analyze(testOptions(t), strings.Repeat(" \n\t", 20), "")
	require.NoError(t, err)
	assert.Equal(t, 0, result.ATSScore)
}
