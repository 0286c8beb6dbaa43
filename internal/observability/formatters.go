// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentSummary outputs a human-readable overview of the resume
// document about to be exported.
func (p *Printer) PrintDocumentSummary(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Personal.FullName))
	if doc.Personal.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.Personal.Email))
	}
	if doc.Personal.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", doc.Personal.Location))
	}
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	sections := []struct {
		name  string
		count int
	}{
		{"Experience", len(doc.Experience)},
		{"Education", len(doc.Education)},
		{"Skills", doc.Skills.Len()},
		{"Projects", len(doc.Projects)},
		{"Certifications", len(doc.Certifications)},
		{"Languages", len(doc.Languages)},
		{"Interests", len(doc.Interests)},
		{"References", len(doc.References)},
	}
	for _, sec := range sections {
		if sec.count == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  • %-14s %d\n", sec.name, sec.count))
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the skills that survived filtering, i.e. what will
// actually appear in the skills section.
func (p *Printer) PrintSkills(skills types.SkillList) {
	names := export.FilterSkills(skills.Names())
	if len(names) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills after filtering: %d\n\n", len(names)))

	count := min(len(names), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", names[i]))
	}
	if len(names) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExportResult outputs the outcome of a PDF export.
func (p *Printer) PrintExportResult(result *export.Result, filename string) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:   %s\n", filename))
	sb.WriteString(fmt.Sprintf("Pages:  %d\n", result.Pages))
	sb.WriteString(fmt.Sprintf("Size:   %.1f KB", float64(len(result.PDF))/1024))

	p.printBox("EXPORT COMPLETE", sb.String())
}
