package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Kcheesee/JApplication-Tracker/internal/analyzer"
	"github.com/Kcheesee/JApplication-Tracker/internal/config"
	"github.com/Kcheesee/JApplication-Tracker/internal/llm"
	"github.com/Kcheesee/JApplication-Tracker/internal/schemas"
	"github.com/Kcheesee/JApplication-Tracker/internal/scoring"
	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// maxConcurrentFetches bounds parallel posting fetches in batch mode.
const maxConcurrentFetches = 4

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against one or more job postings",
	Long:  "Analyze how well a resume fits a job posting: match every extracted requirement, compute a weighted fit score, and report gaps, suggestions, and missing keywords. Multiple --url flags are analyzed concurrently.",
	RunE:  runAnalyze,
}

var (
	analyzeConfig  string
	analyzeResume  string
	analyzeJobFile string
	analyzeURLs    []string
	analyzeOut     string
	analyzeDeep    bool
	analyzeBrowser bool
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to config JSON file with default flag values")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job-file", "f", "", "Path to job posting HTML file")
	analyzeCmd.Flags().StringArrayVarP(&analyzeURLs, "url", "u", nil, "Job posting URL (repeatable for batch analysis)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Output file (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeDeep, "deep", false, "Run LLM-backed deep analysis (requires GEMINI_API_KEY)")
	analyzeCmd.Flags().BoolVar(&analyzeBrowser, "browser", false, "Fall back to a headless browser for JavaScript-rendered boards")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress")

	rootCmd.AddCommand(analyzeCmd)
}

// AnalysisOutput is one posting's analysis in the command output.
type AnalysisOutput struct {
	URL  string              `json:"url,omitempty"`
	Job  string              `json:"job"`
	Fit  *types.FitAnalysis  `json:"fit"`
	Deep *types.DeepAnalysis `json:"deep,omitempty"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:     analyzeResume,
		JobFile:    analyzeJobFile,
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		UseBrowser: analyzeBrowser,
		Verbose:    analyzeVerbose,
	}
	if analyzeConfig != "" {
		defaults, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*defaults)
		if len(analyzeURLs) == 0 && cfg.JobURL != "" {
			analyzeURLs = []string{cfg.JobURL}
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.JobFile == "" && len(analyzeURLs) == 0 {
		return fmt.Errorf("either --job-file or --url must be provided")
	}
	if cfg.JobFile != "" && len(analyzeURLs) > 0 {
		return fmt.Errorf("--job-file and --url are mutually exclusive; provide only one")
	}

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	deep := newDeepAnalyzer(ctx, cfg.APIKey)

	if cfg.JobFile != "" {
		posting, err := loadPostingFromFile(cfg.JobFile)
		if err != nil {
			return err
		}
		output := analyzeOne(ctx, deep, resume, posting, "")
		if err := schemas.ValidateValue("fit", output.Fit); err != nil {
			return fmt.Errorf("analysis output failed schema validation: %w", err)
		}
		return writeJSON(analyzeOut, output)
	}

	outputs := make([]*AnalysisOutput, len(analyzeURLs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, urlStr := range analyzeURLs {
		g.Go(func() error {
			posting, err := loadPostingFromURL(gCtx, urlStr, cfg.UseBrowser, cfg.Verbose)
			if err != nil {
				return fmt.Errorf("%s: %w", urlStr, err)
			}
			outputs[i] = analyzeOne(gCtx, deep, resume, posting, urlStr)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, output := range outputs {
		if err := schemas.ValidateValue("fit", output.Fit); err != nil {
			return fmt.Errorf("analysis output failed schema validation: %w", err)
		}
	}

	if len(outputs) == 1 {
		return writeJSON(analyzeOut, outputs[0])
	}
	return writeJSON(analyzeOut, outputs)
}

func analyzeOne(ctx context.Context, deep *analyzer.DeepAnalyzer, resume *types.ResumeData, posting *types.JobPosting, urlStr string) *AnalysisOutput {
	output := &AnalysisOutput{
		URL: urlStr,
		Job: fmt.Sprintf("%s at %s", posting.Title, posting.Company),
		Fit: scoring.AnalyzeFit(resume, posting),
	}
	if analyzeDeep {
		output.Deep = deep.AnalyzeDeep(ctx, resume, posting)
	}
	return output
}

// newDeepAnalyzer builds the deep analyzer, without an LLM client when no
// key is configured or the client fails to initialize.
func newDeepAnalyzer(ctx context.Context, apiKey string) *analyzer.DeepAnalyzer {
	if !analyzeDeep || apiKey == "" {
		return analyzer.NewDeepAnalyzer(nil)
	}
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		log.Printf("[ANALYZE] LLM client unavailable, using fallback: %v", err)
		return analyzer.NewDeepAnalyzer(nil)
	}
	return analyzer.NewDeepAnalyzer(client)
}
