package fallback

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/schemas"
	"github.com/jobscout/jobscout/internal/types"
)

func TestJobs_NonEmptyAndDeterministic(t *testing.T) {
	q := types.Query{Keywords: "go developer", Location: "Berlin"}

	first := Jobs(q)
	second := Jobs(q)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "fallback output must be byte-identical across calls")

	seen := map[string]bool{}
	for _, item := range first {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Title)
		assert.False(t, seen[item.ID], "duplicate fallback id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestJobs_EmptyKeywordsStillProduces(t *testing.T) {
	items := Jobs(types.Query{})
	assert.NotEmpty(t, items)
}

func TestInterviewPrep_SchemaComplete(t *testing.T) {
	prep := InterviewPrep(types.GenerationRequest{
		SubjectTitle: "Backend Engineer",
		Context:      map[string]string{"company": "Acme", "skills": "Go, SQL"},
	})

	assert.NotEmpty(t, prep.TechnicalQuestions)
	assert.NotEmpty(t, prep.BehavioralQuestions)
	assert.NotEmpty(t, prep.QuestionsToAsk)
	assert.NotEmpty(t, prep.PreparationChecklist)
	assert.NotEmpty(t, prep.STARExamples)
	assert.NotEmpty(t, prep.Timeline.Week1)
	assert.Contains(t, prep.CompanyResearch.KeyFacts[0], "Acme")
	assert.Contains(t, prep.TechnicalTopics, "Go")

	// The offline object must satisfy the same schema demanded of the AI.
	doc, err := json.Marshal(prep)
	require.NoError(t, err)
	assert.NoError(t, schemas.Validate(schemas.InterviewPrep, string(doc)))
}

func TestInterviewPrep_DefaultSkills(t *testing.T) {
	prep := InterviewPrep(types.GenerationRequest{SubjectTitle: "Analyst"})
	assert.Contains(t, prep.SkillsToHighlight, "Communication")
}

func TestRoadmap_SchemaComplete(t *testing.T) {
	roadmap := Roadmap(types.GenerationRequest{
		SubjectTitle: "Data Engineer",
		Context:      map[string]string{"skills": "Python"},
	})

	require.Len(t, roadmap.Phases, 4)
	assert.Equal(t, "Foundation", roadmap.Phases[0].Name)
	assert.Contains(t, roadmap.Overview, "Data Engineer")

	doc, err := json.Marshal(roadmap)
	require.NoError(t, err)
	assert.NoError(t, schemas.Validate(schemas.Roadmap, string(doc)))
}

func TestSkillGap_SchemaComplete(t *testing.T) {
	analysis := SkillGap(types.GenerationRequest{
		SubjectTitle: "DevOps Engineer",
		Context:      map[string]string{"skills": "Linux, Docker"},
	})

	assert.ElementsMatch(t, []string{"Docker", "Linux"}, analysis.MatchedSkills)
	assert.NotEmpty(t, analysis.TimelineEstimate)

	doc, err := json.Marshal(analysis)
	require.NoError(t, err)
	assert.NoError(t, schemas.Validate(schemas.SkillGap, string(doc)))
}

func TestResume_DetectsVocabularySkills(t *testing.T) {
	parsed := Resume("Built services in Go and Python, deployed with Docker on AWS.")
	assert.Contains(t, parsed.Skills, "Go")
	assert.Contains(t, parsed.Skills, "Python")
	assert.Contains(t, parsed.Skills, "Docker")
	assert.Contains(t, parsed.Skills, "AWS")
	assert.NotEmpty(t, parsed.SuggestedJobTitles)
}

func TestResume_NoMatchesYieldsCannedSkills(t *testing.T) {
	parsed := Resume("A resume with nothing recognizable in it.")
	assert.Equal(t, defaultResumeSkills, parsed.Skills)
	assert.True(t, types.ValidExperienceLevel(parsed.ExperienceLevel))
}

func TestResume_ValidatesAgainstSchema(t *testing.T) {
	parsed := Resume("React and Node.js developer")
	doc, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.NoError(t, schemas.Validate(schemas.ParsedResume, string(doc)))
}

func TestVideos_Deterministic(t *testing.T) {
	first := Videos("golang interview questions")
	second := Videos("golang interview questions")
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	for _, v := range first {
		assert.NotEmpty(t, v.URL)
	}
}
