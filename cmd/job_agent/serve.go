package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kcheesee/JApplication-Tracker/internal/server"
)

var (
	serveAddr    string
	serveBrowser bool
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing posting ingestion, fit analysis, and tailoring endpoints with JWT authentication.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().BoolVar(&serveBrowser, "browser", false, "Fall back to a headless browser for JavaScript-rendered boards")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed progress")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg := server.Config{
		Addr:        serveAddr,
		DatabaseURL: databaseURL,
		APIKey:      os.Getenv("GEMINI_API_KEY"), // optional; deep analysis degrades without it
		UseBrowser:  serveBrowser,
		Verbose:     serveVerbose,
	}

	srv, err := server.New(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
