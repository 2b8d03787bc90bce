// Package main provides the entry point for the resume analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_engine",
	Short: "Resume Analysis & Job-Matching Engine",
	Long:  "resume_engine scores resumes against a deterministic ATS model, computes weighted skill matches against job postings, and produces improvement suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
