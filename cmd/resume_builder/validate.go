package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume document against the document schema",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to resume document JSON file (required)")
	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateDocument(raw); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
			}
		}
		return fmt.Errorf("document validation failed")
	}

	fmt.Fprintf(os.Stdout, "Document is valid\n")
	return nil
}
