// Package pipeline sequences the analysis stages into the engine's public
// entry points: single-resume analysis and multi-job ranking.
package pipeline

import (
	"context"
	"fmt"

	"github.com/Dharaneesh-S-S/resume-engine/internal/extract"
	"github.com/Dharaneesh-S-S/resume-engine/internal/match"
	"github.com/Dharaneesh-S-S/resume-engine/internal/normalize"
	"github.com/Dharaneesh-S-S/resume-engine/internal/observability"
	"github.com/Dharaneesh-S-S/resume-engine/internal/requirements"
	"github.com/Dharaneesh-S-S/resume-engine/internal/scoring"
	"github.com/Dharaneesh-S-S/resume-engine/internal/suggest"
	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
	"github.com/Dharaneesh-S-S/resume-engine/internal/vocab"
)

// Options configures an analysis run. Vocabulary is required; the engine
// refuses to analyze without one. The zero Scoring config means defaults.
type Options struct {
	Vocabulary *vocab.Vocabulary
	Scoring    *scoring.Config
	// Printer, when set, receives verbose stage output.
	Printer *observability.Printer
}

func (o *Options) scoringConfig() scoring.Config {
	if o.Scoring != nil {
		return *o.Scoring
	}
	return scoring.DefaultConfig()
}

// Analyze runs the full pipeline over a resume: normalize, extract, score,
// and suggest; when jobText is non-empty it also extracts the job's
// requirements and computes the match. Empty or unreadable resume text is
// a valid, low-information input, not an error: it yields a near-zero
// score and suggestions, never a failure. The only hard error is a missing
// vocabulary.
//
// Analyze is a pure function of its inputs; concurrent calls sharing one
// vocabulary are safe.
func Analyze(opts Options, resumeText, jobText string) (*types.AnalysisResult, error) {
	profile, err := buildProfile(opts, resumeText)
	if err != nil {
		return nil, err
	}

	atsScore := opts.scoringConfig().Score(profile)

	var matchResult *types.MatchResult
	if jobText != "" {
		req := requirements.Extract(jobText, opts.Vocabulary)
		if opts.Printer != nil {
			opts.Printer.PrintRequirement(req)
		}
		mr := match.Compare(profile, req)
		matchResult = &mr
	}

	result := &types.AnalysisResult{
		ATSScore:    atsScore,
		Suggestions: suggest.Build(profile, matchResult),
	}
	if matchResult != nil {
		percent := matchResult.MatchPercent
		result.MatchPercent = &percent
		result.MissingKeywords = matchResult.MissingKeywords
		result.Note = matchResult.Note
	}

	if opts.Printer != nil {
		opts.Printer.PrintAnalysis(result)
	}
	return result, nil
}

// RankJobs analyzes one resume against many job postings and returns the
// per-job matches ordered best-first. Comparisons run concurrently; the
// ordering pass is applied once after all complete.
func RankJobs(ctx context.Context, opts Options, resumeText string, jobTexts []string) ([]types.RankedMatch, error) {
	profile, err := buildProfile(opts, resumeText)
	if err != nil {
		return nil, err
	}

	reqs := make([]*types.JobRequirement, len(jobTexts))
	for i, jobText := range jobTexts {
		reqs[i] = requirements.Extract(jobText, opts.Vocabulary)
	}

	ranked, err := match.Rank(ctx, profile, reqs)
	if err != nil {
		return nil, err
	}
	if opts.Printer != nil {
		opts.Printer.PrintRanking(ranked)
	}
	return ranked, nil
}

// buildProfile normalizes resume text and extracts its skill profile and
// sections.
func buildProfile(opts Options, resumeText string) (*types.ExtractedProfile, error) {
	if opts.Vocabulary == nil {
		return nil, fmt.Errorf("vocabulary is required")
	}

	doc := extract.BuildDocument(resumeText)
	stream := normalize.Normalize(doc.Text)
	profile := extract.Profile(stream, opts.Vocabulary, extract.SectionKinds(doc.Sections))
	if opts.Printer != nil {
		opts.Printer.PrintProfile(profile)
	}
	return profile, nil
}
