package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Kcheesee/JApplication-Tracker/internal/fetch"
	"github.com/Kcheesee/JApplication-Tracker/internal/ingestion"
	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// loadResume reads and parses a resume JSON file.
func loadResume(path string) (*types.ResumeData, error) {
	if path == "" {
		return nil, fmt.Errorf("--resume is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	var resume types.ResumeData
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}

// loadPostingFromFile parses a posting from a local HTML file. Without a URL
// the generic parser is used.
func loadPostingFromFile(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	return ingestion.ParsePosting("", string(data))
}

// loadPostingFromURL fetches and parses a posting from a job board URL.
func loadPostingFromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (*types.JobPosting, error) {
	opts := fetch.DefaultOptions()
	opts.UseBrowserFallback = useBrowser
	opts.Verbose = verbose

	result, err := fetch.Posting(ctx, urlStr, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posting: %w", err)
	}
	return ingestion.ParsePosting(urlStr, result.HTML)
}

// writeJSON writes v as indented JSON to path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
