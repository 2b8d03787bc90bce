package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Dharaneesh-S-S/resume-engine/internal/ingestion"
	"github.com/Dharaneesh-S-S/resume-engine/internal/observability"
	"github.com/Dharaneesh-S-S/resume-engine/internal/pipeline"
	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank multiple job postings against one resume",
	Long:  "Rank compares a resume against several job posting files and orders them best-match-first: descending match percent, then fewer missing keywords, then input order.",
	RunE:  runRank,
}

var (
	rankResumeFile string
	rankJobFiles   []string
	rankVocabFile  string
	rankOutFile    string
	rankVerbose    bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankResumeFile, "resume", "r", "", "Path to resume text file (required)")
	rankCmd.Flags().StringSliceVar(&rankJobFiles, "jobs", nil, "Comma-separated job posting text files (required)")
	rankCmd.Flags().StringVar(&rankVocabFile, "vocab", "", "Path to skill vocabulary JSON (builtin vocabulary when omitted)")
	rankCmd.Flags().StringVarP(&rankOutFile, "out", "o", "", "Path to write the ranking JSON (stdout when omitted)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed stage output")

	rootCmd.AddCommand(rankCmd)
}

// rankedJob pairs a ranked match with the posting file it came from.
type rankedJob struct {
	Job string `json:"job"`
	types.RankedMatch
}

// rankingEnvelope is the CLI's ranking output wrapper.
type rankingEnvelope struct {
	RunID   string      `json:"run_id"`
	Ranking []rankedJob `json:"ranking"`
}

func runRank(_ *cobra.Command, _ []string) error {
	if rankResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}
	if len(rankJobFiles) == 0 {
		return fmt.Errorf("--jobs requires at least one job posting file")
	}

	vocabulary, err := loadVocabulary(rankVocabFile)
	if err != nil {
		return err
	}

	resumeText, err := ingestion.ReadFile(rankResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobTexts := make([]string, len(rankJobFiles))
	for i, path := range rankJobFiles {
		text, err := ingestion.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read job posting %s: %w", path, err)
		}
		jobTexts[i] = text
	}

	opts := pipeline.Options{Vocabulary: vocabulary}
	if rankVerbose {
		opts.Printer = observability.NewPrinter(os.Stdout)
	}

	ranked, err := pipeline.RankJobs(context.Background(), opts, resumeText, jobTexts)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	envelope := rankingEnvelope{
		RunID:   uuid.New().String(),
		Ranking: make([]rankedJob, len(ranked)),
	}
	for i, rm := range ranked {
		envelope.Ranking[i] = rankedJob{Job: rankJobFiles[rm.JobIndex], RankedMatch: rm}
	}
	return writeResult(rankOutFile, envelope)
}
