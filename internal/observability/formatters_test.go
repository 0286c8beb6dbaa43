package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintDocumentSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.NewResumeDocument()
	doc.Personal.FullName = "Ada Lovelace"
	doc.Personal.Email = "ada@example.com"
	doc.Experience = []types.ExperienceEntry{
		{ID: 1, Title: "Engineer", Company: "Acme"},
		{ID: 2, Title: "Senior Engineer", Company: "Acme"},
	}
	doc.Skills = types.SkillList{Mode: types.SkillModeSimple, Simple: []string{"Go", "PostgreSQL"}}

	p.PrintDocumentSummary(doc)
	output := buf.String()

	assert.Contains(t, output, "RESUME DOCUMENT")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "ada@example.com")
	assert.Contains(t, output, "Experience")
	assert.Contains(t, output, "Skills")
	// Empty sections are omitted from the listing.
	assert.NotContains(t, output, "References")
}

func TestPrintDocumentSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocumentSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := types.SkillList{
		Mode:   types.SkillModeSimple,
		Simple: []string{"Go", "Kubernetes", "PostgreSQL", "Terraform", "Redis", "Kafka", "AWS"},
	}

	p.PrintSkills(skills)
	output := buf.String()

	assert.Contains(t, output, "SKILLS")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "more")
}

func TestPrintSkills_EmptyAfterFiltering(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	// Stoplist words and short lowercase tokens are filtered out entirely.
	skills := types.SkillList{Mode: types.SkillModeSimple, Simple: []string{"and", "the"}}

	p.PrintSkills(skills)
	assert.Empty(t, buf.String())
}

func TestPrintExportResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &export.Result{PDF: make([]byte, 2048), Pages: 2}
	p.PrintExportResult(result, "Ada_Lovelace_Resume.pdf")
	output := buf.String()

	assert.Contains(t, output, "EXPORT COMPLETE")
	assert.Contains(t, output, "Ada_Lovelace_Resume.pdf")
	assert.Contains(t, output, "2")
	assert.Contains(t, output, "2.0 KB")
}

func TestPrintExportResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExportResult(nil, "x.pdf")
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
