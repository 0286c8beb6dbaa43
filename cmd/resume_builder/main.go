// Package main provides the entry point for the Resume Builder server and exporter.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume Builder HTTP API server and PDF exporter",
	Long:  "Resume Builder stores structured resume documents and exports them as paginated PDF resumes, optionally tailored to a job posting.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
