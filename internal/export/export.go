// Package export converts an in-memory resume document into a paginated,
// styled, printable PDF, embedding invisible ATS keywords when a job
// description is supplied.
package export

import (
	"bytes"
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/jonathan/resume-builder/internal/sanitize"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	// ErrMissingName is returned before any work begins when the
	// document has no full name.
	ErrMissingName = errors.New("full name is required before export")
	// ErrGenerationFailed wraps any failure during document drawing.
	// There is no partial or resumable export.
	ErrGenerationFailed = errors.New("resume generation failed")
)

// Options configures one export call.
type Options struct {
	Style StyleConfig
	ATS   ATSConfig
	// JobDescription, when non-empty, is embedded invisibly on the
	// first page for ATS keyword scanners.
	JobDescription string
	// InterestAlignment selects the interests paragraph alignment.
	InterestAlignment Alignment
}

// DefaultOptions returns Options with the standard style and embedding
// configuration.
func DefaultOptions() Options {
	return Options{
		Style:             DefaultStyle(),
		ATS:               DefaultATS(),
		InterestAlignment: AlignLeft,
	}
}

// Result is the exported document artifact.
type Result struct {
	PDF   []byte
	Pages int
}

// Generate builds the PDF for doc. Each call constructs its own layout
// state, so concurrent exports do not interfere. Any panic during
// drawing is recovered at this level only, logged, and surfaced as
// ErrGenerationFailed.
func Generate(doc *types.ResumeDocument, opts Options) (res *Result, err error) {
	if doc == nil || strings.TrimSpace(doc.Personal.FullName) == "" {
		return nil, ErrMissingName
	}
	if opts.Style.PageWidth == 0 {
		opts.Style = DefaultStyle()
	}
	if opts.ATS.ChunkSize == 0 {
		opts.ATS = DefaultATS()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("export: recovered from drawing panic: %v", r)
			res, err = nil, ErrGenerationFailed
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(sanitize.Clean(doc.Personal.FullName)+" - Resume", true)
	pdf.SetAutoPageBreak(false, 0) // the flow engine owns pagination
	pdf.AddPage()

	l := newLayout(pdf, opts.Style)

	if opts.JobDescription != "" {
		embedKeywords(l, opts.JobDescription, opts.ATS)
	}

	renderHeader(l, doc.Personal)
	renderSummary(l, doc.Personal.Summary)
	renderExperience(l, doc.Experience)
	renderEducation(l, doc.Education)
	renderSkills(l, doc.Skills)
	renderProjects(l, doc.Projects)
	renderCertifications(l, doc.Certifications)
	renderLanguages(l, doc.Languages)
	renderInterests(l, doc.Interests, opts.InterestAlignment)
	renderReferences(l, doc.References)

	var buf bytes.Buffer
	if outErr := pdf.Output(&buf); outErr != nil {
		log.Printf("export: writing document failed: %v", outErr)
		return nil, ErrGenerationFailed
	}
	return &Result{PDF: buf.Bytes(), Pages: pdf.PageCount()}, nil
}

var filenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Filename derives the download filename from the resume's full name:
// the sanitized name with spaces underscored plus a fixed suffix.
func Filename(fullName string) string {
	cleaned := sanitize.Clean(fullName)
	cleaned = strings.ReplaceAll(cleaned, " ", "_")
	cleaned = filenameUnsafe.ReplaceAllString(cleaned, "")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return "Resume.pdf"
	}
	return cleaned + "_Resume.pdf"
}
