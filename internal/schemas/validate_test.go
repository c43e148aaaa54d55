package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RankingValid(t *testing.T) {
	doc := `[{"itemIndex": 1, "score": 95, "reason": "strong match"},
	         {"itemIndex": 3, "score": 80}]`
	assert.NoError(t, Validate(Ranking, doc))
}

func TestValidate_RankingRejectsOutOfRangeScore(t *testing.T) {
	doc := `[{"itemIndex": 1, "score": 120}]`
	err := Validate(Ranking, doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, Ranking, ve.Schema)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidate_RankingRejectsObject(t *testing.T) {
	err := Validate(Ranking, `{"itemIndex": 1, "score": 50}`)
	assert.Error(t, err)
}

func TestValidate_SkillGapMissingRequired(t *testing.T) {
	doc := `{"matchedSkills": ["Go"], "missingSkills": []}`
	var ve *ValidationError
	require.ErrorAs(t, Validate(SkillGap, doc), &ve)
}

func TestValidate_ParsedResumeValid(t *testing.T) {
	doc := `{
	  "personalInfo": {"name": "A", "email": "a@b.c", "phone": "", "location": ""},
	  "skills": ["Go", "SQL"],
	  "workExperience": [{"title": "Engineer", "company": "Acme"}],
	  "education": [],
	  "experienceLevel": "mid",
	  "suggestedJobTitles": ["Backend Developer"],
	  "summary": "s"
	}`
	assert.NoError(t, Validate(ParsedResume, doc))
}

func TestValidate_ParsedResumeRejectsUnknownLevel(t *testing.T) {
	doc := `{"skills": [], "experienceLevel": "wizard", "suggestedJobTitles": ["x"]}`
	assert.Error(t, Validate(ParsedResume, doc))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope", `{}`)
	require.Error(t, err)

	var ve *ValidationError
	assert.NotErrorAs(t, err, &ve)
}

func TestValidate_NotJSON(t *testing.T) {
	assert.Error(t, Validate(Ranking, "not json at all"))
}
