package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job posting into structured requirements",
	Long:  "Parse a job posting from an HTML file or URL and output the structured posting with extracted, categorized requirements as JSON.",
	RunE:  runParseJob,
}

var (
	parseJobFile    string
	parseJobURL     string
	parseJobOut     string
	parseJobBrowser bool
	parseJobVerbose bool
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseJobFile, "file", "f", "", "Path to job posting HTML file")
	parseJobCmd.Flags().StringVarP(&parseJobURL, "url", "u", "", "URL to fetch job posting from")
	parseJobCmd.Flags().StringVarP(&parseJobOut, "out", "o", "", "Output file (default: stdout)")
	parseJobCmd.Flags().BoolVar(&parseJobBrowser, "browser", false, "Fall back to a headless browser for JavaScript-rendered boards")
	parseJobCmd.Flags().BoolVarP(&parseJobVerbose, "verbose", "v", false, "Print detailed progress")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(cmd *cobra.Command, _ []string) error {
	if parseJobFile == "" && parseJobURL == "" {
		return fmt.Errorf("either --file or --url must be provided")
	}
	if parseJobFile != "" && parseJobURL != "" {
		return fmt.Errorf("--file and --url are mutually exclusive; provide only one")
	}

	var posting *types.JobPosting
	var err error

	if parseJobFile != "" {
		posting, err = loadPostingFromFile(parseJobFile)
	} else {
		posting, err = loadPostingFromURL(cmd.Context(), parseJobURL, parseJobBrowser, parseJobVerbose)
	}
	if err != nil {
		return err
	}

	return writeJSON(parseJobOut, posting)
}
