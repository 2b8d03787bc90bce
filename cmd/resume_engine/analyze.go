package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Dharaneesh-S-S/resume-engine/internal/config"
	"github.com/Dharaneesh-S-S/resume-engine/internal/fetch"
	"github.com/Dharaneesh-S-S/resume-engine/internal/ingestion"
	"github.com/Dharaneesh-S-S/resume-engine/internal/observability"
	"github.com/Dharaneesh-S-S/resume-engine/internal/pipeline"
	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
	"github.com/Dharaneesh-S-S/resume-engine/internal/vocab"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume, optionally against a job posting",
	Long:  "Analyze a resume text file: compute its ATS score and improvement suggestions, and, when a job posting is given, its skill-match percentage and missing keywords.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeVocabFile  string
	analyzeConfigFile string
	analyzeOutFile    string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVar(&analyzeVocabFile, "vocab", "", "Path to skill vocabulary JSON (builtin vocabulary when omitted)")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVarP(&analyzeOutFile, "out", "o", "", "Path to write the result JSON (stdout when omitted)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed stage output")

	rootCmd.AddCommand(analyzeCmd)
}

// analysisEnvelope is the CLI's output wrapper. The engine's AnalysisResult
// carries no identity; the run ID is the caller-side envelope, stamped here.
type analysisEnvelope struct {
	RunID string `json:"run_id"`
	types.AnalysisResult
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:  analyzeResumeFile,
		Job:     analyzeJobFile,
		JobURL:  analyzeJobURL,
		Vocab:   analyzeVocabFile,
		Out:     analyzeOutFile,
		Verbose: analyzeVerbose,
	}
	if analyzeConfigFile != "" {
		fileCfg, err := config.Load(analyzeConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}

	vocabulary, err := loadVocabulary(cfg.Vocab)
	if err != nil {
		return err
	}

	resumeText, err := ingestion.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	ctx := context.Background()
	jobText, err := loadJobText(ctx, cfg.Job, cfg.JobURL)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Vocabulary: vocabulary,
		Scoring:    cfg.Scoring,
	}
	if cfg.Verbose {
		opts.Printer = observability.NewPrinter(os.Stdout)
	}

	result, err := pipeline.Analyze(opts, resumeText, jobText)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	envelope := analysisEnvelope{
		RunID:          uuid.New().String(),
		AnalysisResult: *result,
	}
	return writeResult(cfg.Out, envelope)
}

// loadVocabulary loads the vocabulary file, falling back to the builtin
// table when no path is configured. The RESUME_ENGINE_VOCAB environment
// variable supplies the default path.
func loadVocabulary(path string) (*vocab.Vocabulary, error) {
	if path == "" {
		path = os.Getenv("RESUME_ENGINE_VOCAB")
	}
	if path == "" {
		return vocab.Builtin(), nil
	}
	v, err := vocab.Load(path)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// loadJobText resolves the optional job posting: a local file, a fetched
// URL, or empty when neither is given.
func loadJobText(ctx context.Context, jobFile, jobURL string) (string, error) {
	switch {
	case jobFile != "":
		text, err := ingestion.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job posting: %w", err)
		}
		return text, nil
	case jobURL != "":
		text, err := fetch.JobPosting(ctx, jobURL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return ingestion.CleanText(text), nil
	default:
		return "", nil
	}
}

// writeResult marshals v as indented JSON to the output file, or stdout
// when no path is given.
func writeResult(outPath string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if outPath == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)
	return nil
}
