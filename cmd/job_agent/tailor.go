package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kcheesee/JApplication-Tracker/internal/schemas"
	"github.com/Kcheesee/JApplication-Tracker/internal/scoring"
	"github.com/Kcheesee/JApplication-Tracker/internal/tailoring"
	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Build a tailoring plan for a resume against a job posting",
	Long:  "Produce a prioritized list of concrete resume edits addressing the gaps and partial matches found when scoring the resume against a posting, plus keywords to add and cover letter points.",
	RunE:  runTailor,
}

var (
	tailorResume  string
	tailorJobFile string
	tailorURL     string
	tailorOut     string
	tailorBrowser bool
	tailorVerbose bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorResume, "resume", "r", "", "Path to resume JSON file")
	tailorCmd.Flags().StringVarP(&tailorJobFile, "job-file", "f", "", "Path to job posting HTML file")
	tailorCmd.Flags().StringVarP(&tailorURL, "url", "u", "", "URL to fetch job posting from")
	tailorCmd.Flags().StringVarP(&tailorOut, "out", "o", "", "Output file (default: stdout)")
	tailorCmd.Flags().BoolVar(&tailorBrowser, "browser", false, "Fall back to a headless browser for JavaScript-rendered boards")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed progress")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	if tailorJobFile == "" && tailorURL == "" {
		return fmt.Errorf("either --job-file or --url must be provided")
	}
	if tailorJobFile != "" && tailorURL != "" {
		return fmt.Errorf("--job-file and --url are mutually exclusive; provide only one")
	}

	resume, err := loadResume(tailorResume)
	if err != nil {
		return err
	}

	var posting *types.JobPosting
	if tailorJobFile != "" {
		posting, err = loadPostingFromFile(tailorJobFile)
	} else {
		posting, err = loadPostingFromURL(cmd.Context(), tailorURL, tailorBrowser, tailorVerbose)
	}
	if err != nil {
		return err
	}

	fit := scoring.AnalyzeFit(resume, posting)
	plan := tailoring.BuildPlan(resume, posting, fit)

	if err := schemas.ValidateValue("plan", plan); err != nil {
		return fmt.Errorf("tailoring plan failed schema validation: %w", err)
	}

	return writeJSON(tailorOut, plan)
}
