package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/jobdesc"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume document to PDF",
	Long:  "Export a resume JSON document to a paginated PDF, optionally embedding keywords from a job posting for ATS scanners.",
	RunE:  runExport,
}

var (
	exportInputFile  string
	exportOutputFile string
	exportJobFile    string
	exportJobURL     string
	exportAlign      string
	exportUseBrowser bool
	exportVerbose    bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to resume document JSON file (required)")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Path to output PDF file (default derived from the name)")
	exportCmd.Flags().StringVar(&exportJobFile, "job-file", "", "Path to job posting text file")
	exportCmd.Flags().StringVar(&exportJobURL, "job-url", "", "URL of a job posting to fetch")
	exportCmd.Flags().StringVar(&exportAlign, "align", "", "Interests alignment: left, center, right, justify")
	exportCmd.Flags().BoolVar(&exportUseBrowser, "use-browser", false, "Render SPA job boards with a headless browser")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print document and export details")
	_ = exportCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	if exportJobFile != "" && exportJobURL != "" {
		return fmt.Errorf("cannot use --job-file with --job-url")
	}

	raw, err := os.ReadFile(exportInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateDocument(raw); err != nil {
		return fmt.Errorf("document validation failed: %w", err)
	}
	doc := types.DecodeDocument(raw)

	jobText, err := loadJobText()
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if exportVerbose {
		printer.PrintDocumentSummary(doc)
		printer.PrintSkills(doc.Skills)
	}

	opts := export.DefaultOptions()
	opts.JobDescription = jobText
	if exportAlign != "" {
		opts.InterestAlignment = export.ParseAlignment(exportAlign)
	}

	result, err := export.Generate(doc, opts)
	if err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}

	outPath := exportOutputFile
	if outPath == "" {
		outPath = export.Filename(doc.Personal.FullName)
	}
	if err := os.WriteFile(outPath, result.PDF, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if exportVerbose {
		printer.PrintExportResult(result, outPath)
	} else {
		fmt.Fprintf(os.Stdout, "Exported %s (%d pages)\n", outPath, result.Pages)
	}

	return nil
}

// loadJobText resolves the optional job posting from a file or URL.
func loadJobText() (string, error) {
	if exportJobFile != "" {
		content, err := os.ReadFile(exportJobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(content), nil
	}
	if exportJobURL != "" {
		text, err := jobdesc.FetchText(context.Background(), exportJobURL, exportUseBrowser)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return text, nil
	}
	return "", nil
}
