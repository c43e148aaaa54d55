// Package main provides the entry point for the jobscout job search
// assistant: an HTTP API server plus CLI commands for each pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "jobscout",
	Short: "Job search assistant",
	Long: "jobscout searches job boards, ranks postings against a candidate profile, " +
		"and generates interview preparation, career roadmaps, and skill gap analyses. " +
		"Every provider degrades to a deterministic offline fallback, so commands always answer.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
