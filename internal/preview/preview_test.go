package preview

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/sanitize"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_NilDocument(t *testing.T) {
	html, err := Render(nil)
	require.NoError(t, err)
	assert.Contains(t, html, "<html")
}

func TestRender_EscapesMarkup(t *testing.T) {
	doc := types.NewResumeDocument()
	doc.Personal.FullName = "Jane <script>alert(1)</script> Doe"

	html, err := Render(doc)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

func TestRender_IncludesSections(t *testing.T) {
	doc := types.NewResumeDocument()
	doc.Personal = types.PersonalInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Summary:  "Backend engineer.",
	}
	doc.Experience = []types.ExperienceEntry{{
		ID: 1, Title: "Engineer", Company: "Acme",
		StartDate: "2020-01", EndDate: "",
		Description: "- Built the pipeline\n- Ran the migration",
	}}
	doc.Skills = types.SkillList{Mode: types.SkillModeSimple, Simple: []string{"Go", "PostgreSQL"}}

	html, err := Render(doc)
	require.NoError(t, err)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "jane@example.com")
	assert.Contains(t, html, "Professional Summary")
	assert.Contains(t, html, "Jan 2020 - Present")
	assert.Contains(t, html, "Built the pipeline")
	assert.Contains(t, html, "PostgreSQL")
}

func TestRender_EmptySectionsOmitted(t *testing.T) {
	doc := types.NewResumeDocument()
	doc.Personal.FullName = "Jane Doe"

	html, err := Render(doc)
	require.NoError(t, err)
	assert.NotContains(t, html, "Experience</h2>")
	assert.NotContains(t, html, "Certifications")
	assert.NotContains(t, html, "References")
}

func TestRender_ReferencesValidated(t *testing.T) {
	doc := types.NewResumeDocument()
	doc.Personal.FullName = "Jane Doe"
	doc.References = []types.ReferenceEntry{{ID: 1, Email: "not-an-email"}}

	html, err := Render(doc)
	require.NoError(t, err)
	assert.Contains(t, html, sanitize.PlaceholderName)
	assert.NotContains(t, html, "not-an-email")
}

func TestBulletLines(t *testing.T) {
	lines := bulletLines("- first point\n• second point\n\n  third point  ")
	assert.Equal(t, []string{"first point", "second point", "third point"}, lines)
}
