// Package preview renders a scaled-down HTML approximation of the
// exported document for on-screen feedback. It applies the same
// sanitization and date rules as the exporter, so what the user sees
// tracks what the PDF will contain.
package preview

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/sanitize"
	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed preview.html.tmpl
var previewTemplate string

var tmpl = template.Must(template.New("preview").Parse(previewTemplate))

// RenderError indicates the preview template could not be executed.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error { return e.Cause }

// TemplateData is the structure passed to the preview template.
type TemplateData struct {
	Name           string
	Contact        string
	Summary        string
	Experience     []ExperienceSection
	Education      []EducationSection
	Skills         []string
	Projects       []ProjectSection
	Certifications []string
	Languages      []string
	Interests      string
	References     []ReferenceSection
}

// ExperienceSection is one experience record prepared for display.
type ExperienceSection struct {
	Title   string
	Company string
	Dates   string
	Bullets []string
}

// EducationSection is one education record prepared for display.
type EducationSection struct {
	Degree  string
	School  string
	Dates   string
	Courses []string
}

// ProjectSection is one project record prepared for display.
type ProjectSection struct {
	Name         string
	Technologies string
	Bullets      []string
	URL          string
}

// ReferenceSection is one validated reference prepared for display.
type ReferenceSection struct {
	Name    string
	Role    string
	Contact string
}

// Render builds the HTML approximation of doc.
func Render(doc *types.ResumeDocument) (string, error) {
	if doc == nil {
		doc = types.NewResumeDocument()
	}

	data := buildTemplateData(doc)

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &RenderError{Message: "failed to execute preview template", Cause: err}
	}
	return out.String(), nil
}

func buildTemplateData(doc *types.ResumeDocument) *TemplateData {
	data := &TemplateData{
		Name:    sanitize.Clean(doc.Personal.FullName),
		Summary: sanitize.Clean(doc.Personal.Summary),
		Skills:  export.FilterSkills(doc.Skills.Names()),
	}

	data.Contact = joinNonEmpty(" | ",
		sanitize.Clean(doc.Personal.Email),
		sanitize.Clean(doc.Personal.Phone),
		sanitize.Clean(doc.Personal.Location),
	)

	for _, e := range doc.Experience {
		data.Experience = append(data.Experience, ExperienceSection{
			Title:   sanitize.Clean(e.Title),
			Company: joinNonEmpty(", ", sanitize.Clean(e.Company), sanitize.Clean(e.Location)),
			Dates:   sanitize.FormatDateRange(e.StartDate, e.EndDate),
			Bullets: bulletLines(e.Description),
		})
	}

	for _, e := range doc.Education {
		var courses []string
		for _, part := range strings.Split(e.RelevantCourses, ",") {
			if c := sanitize.Clean(part); c != "" {
				courses = append(courses, c)
			}
		}
		data.Education = append(data.Education, EducationSection{
			Degree:  sanitize.Clean(e.Degree),
			School:  joinNonEmpty(", ", sanitize.Clean(e.School), sanitize.Clean(e.Location)),
			Dates:   sanitize.FormatDateRange(e.StartDate, e.EndDate),
			Courses: courses,
		})
	}

	for _, p := range doc.Projects {
		data.Projects = append(data.Projects, ProjectSection{
			Name:         sanitize.Clean(p.Name),
			Technologies: sanitize.Clean(p.Technologies),
			Bullets:      bulletLines(p.Description),
			URL:          sanitize.Clean(p.URL),
		})
	}

	for _, c := range doc.Certifications {
		line := joinNonEmpty(", ",
			sanitize.Clean(c.Name),
			sanitize.Clean(c.Issuer),
			sanitize.FormatDate(c.Date, false),
		)
		if line != "" {
			data.Certifications = append(data.Certifications, line)
		}
	}

	for _, lang := range doc.Languages {
		name := sanitize.Clean(lang.Name)
		if name == "" {
			continue
		}
		if prof := sanitize.Clean(lang.Proficiency); prof != "" {
			name += " (" + prof + ")"
		}
		data.Languages = append(data.Languages, name)
	}

	var interests []string
	for _, interest := range doc.Interests {
		if c := sanitize.Clean(interest); c != "" {
			interests = append(interests, c)
		}
	}
	data.Interests = strings.Join(interests, ", ")

	for _, raw := range doc.References {
		ref := sanitize.ValidateReference(raw)
		data.References = append(data.References, ReferenceSection{
			Name:    ref.Name,
			Role:    joinNonEmpty(", ", ref.Title, ref.Company),
			Contact: joinNonEmpty(" | ", ref.Email, ref.Phone),
		})
	}

	return data
}

// bulletLines applies the exporter's bulleted-paragraph splitting rules:
// newline-separated lines, leading glyphs stripped, empties dropped.
func bulletLines(text string) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := sanitize.Clean(strings.TrimLeft(strings.TrimSpace(raw), "-*•· "))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
