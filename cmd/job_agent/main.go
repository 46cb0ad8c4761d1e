// Package main provides the entry point for the job application agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_agent",
	Short: "Job posting analysis and resume fit agent",
	Long:  "job_agent ingests job postings, extracts their requirements, scores a resume against them, and produces tailoring plans, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
