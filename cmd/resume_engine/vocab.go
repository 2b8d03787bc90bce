package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dharaneesh-S-S/resume-engine/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect and validate skill vocabularies",
}

var vocabValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a skill vocabulary JSON file",
	Long:  "Validate a vocabulary file against the vocabulary JSON Schema and the engine's consistency rules (no conflicting aliases, no duplicate canonical names).",
	RunE:  runVocabValidate,
}

var vocabValidateFile string

func init() {
	vocabValidateCmd.Flags().StringVar(&vocabValidateFile, "vocab", "", "Path to skill vocabulary JSON file (required)")

	vocabCmd.AddCommand(vocabValidateCmd)
	rootCmd.AddCommand(vocabCmd)
}

func runVocabValidate(_ *cobra.Command, _ []string) error {
	if vocabValidateFile == "" {
		return fmt.Errorf("--vocab is required")
	}

	v, err := vocab.Load(vocabValidateFile)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Vocabulary OK: %d canonical skills\n", v.Size())
	return nil
}
