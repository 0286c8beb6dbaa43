package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("generation.json", "professional_summary")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "professional summary")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("generation.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestAllGenerationKeysPresent(t *testing.T) {
	ClearCache()

	for _, key := range []string{"professional_summary", "skills_list", "relevant_courses", "enhance_text"} {
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, MustGet("generation.json", key))
		}, "key %s", key)
	}
}

func TestFormat(t *testing.T) {
	out := Format("Skills: {{.Skills}} for {{.Role}}", map[string]string{
		"Skills": "Go, SQL",
		"Role":   "backend engineer",
	})
	assert.Equal(t, "Skills: Go, SQL for backend engineer", out)
}

func TestFormat_MissingKeyLeftIntact(t *testing.T) {
	out := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", out)
}

func TestGet_CachesParsedFile(t *testing.T) {
	ClearCache()

	first, err := Get("generation.json", "skills_list")
	require.NoError(t, err)
	second, err := Get("generation.json", "skills_list")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
