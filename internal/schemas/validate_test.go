package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_EmptyDocument(t *testing.T) {
	data, err := json.Marshal(types.NewResumeDocument())
	require.NoError(t, err)

	assert.NoError(t, ValidateDocument(data))
}

func TestValidateDocument_FullDocument(t *testing.T) {
	doc := types.NewResumeDocument()
	doc.Personal = types.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"}
	doc.Experience = []types.ExperienceEntry{{ID: 1, Title: "Engineer", Company: "Acme", StartDate: "2020-01"}}
	doc.Skills = types.SkillList{Mode: types.SkillModeDetailed, Detailed: []types.Skill{{Name: "Go", Level: "Expert"}}}
	doc.Interests = []string{"Photography"}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NoError(t, ValidateDocument(data))
}

func TestValidateDocument_SimpleSkillStrings(t *testing.T) {
	assert.NoError(t, ValidateDocument([]byte(`{"skills": ["Go", "PostgreSQL"]}`)))
}

func TestValidateDocument_WrongFieldType(t *testing.T) {
	err := ValidateDocument([]byte(`{"personal": {"fullName": 42}}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "fullName")
}

func TestValidateDocument_UnknownTopLevelField(t *testing.T) {
	err := ValidateDocument([]byte(`{"unknownSection": []}`))
	require.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateDocument_SkillObjectRequiresName(t *testing.T) {
	err := ValidateDocument([]byte(`{"skills": [{"level": "Expert"}]}`))
	assert.Error(t, err)
}

func TestValidateDocument_MalformedJSON(t *testing.T) {
	err := ValidateDocument([]byte(`{not json`))
	assert.Error(t, err)
}
