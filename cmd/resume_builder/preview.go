package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a resume document to an HTML preview",
	Long:  "Render a resume JSON document to the same HTML approximation the editor shows, for checking content before a PDF export.",
	RunE:  runPreview,
}

var (
	previewInputFile  string
	previewOutputFile string
)

func init() {
	previewCmd.Flags().StringVarP(&previewInputFile, "in", "i", "", "Path to resume document JSON file (required)")
	previewCmd.Flags().StringVarP(&previewOutputFile, "out", "o", "preview.html", "Path to output HTML file")
	_ = previewCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(previewInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateDocument(raw); err != nil {
		return fmt.Errorf("document validation failed: %w", err)
	}
	doc := types.DecodeDocument(raw)

	html, err := preview.Render(doc)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	if err := os.WriteFile(previewOutputFile, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Preview written to %s\n", previewOutputFile)
	return nil
}
